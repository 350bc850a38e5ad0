package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/config"
	"github.com/surfquest-catalog/internal/delivery/http/handler"
	"github.com/surfquest-catalog/internal/delivery/http/middleware"
	"github.com/surfquest-catalog/internal/pkg/errors"
	"github.com/surfquest-catalog/internal/pkg/utils"
)

// Handlers - обработчики, которые монтирует сервер
type Handlers struct {
	Catalog *handler.CatalogHandler
	Session *handler.SessionHandler
	Review  *handler.ReviewHandler
	Auth    *handler.AuthHandler
	Stats   *handler.StatsHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "SurfQuest Catalog",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    8 << 20,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - экземпляр fiber (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	h := s.handlers

	// Catalog
	api.Get("/catalog/options", h.Catalog.GetOptions)
	api.Get("/catalog/countries", h.Catalog.GetCountries)

	// Surf zones: статические пути регистрируются до /:id
	api.Get("/surfzones", h.Catalog.ListSurfZones)
	api.Get("/surfzones/search", h.Catalog.SearchSurfZones)
	api.Get("/surfzones/best", h.Catalog.GetBestSurfZones)
	api.Get("/surfzones/:id", h.Catalog.GetSurfZone)

	// Surf spots
	api.Get("/surfspots", h.Catalog.ListSurfSpots)
	api.Get("/surfspots/search", h.Catalog.SearchSurfSpots)
	api.Get("/surfspots/:id", h.Catalog.GetSurfSpot)

	// Filter sessions
	api.Post("/sessions", h.Session.CreateSession)
	api.Get("/sessions/:id", h.Session.GetSession)
	api.Put("/sessions/:id/filters", h.Session.SetFilter)
	api.Post("/sessions/:id/reset", h.Session.ResetSession)
	api.Delete("/sessions/:id", h.Session.DeleteSession)

	// Reviews
	api.Get("/reviews", h.Review.ListReviews)
	me := api.Group("/me")
	me.Get("/reviews", h.Review.ListMyReviews)
	me.Post("/reviews", h.Review.CreateReview)
	me.Put("/reviews/:id", h.Review.UpdateReview)
	me.Delete("/reviews/:id", h.Review.DeleteReview)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/signup", h.Auth.Signup)

	// Stats
	if h.Stats != nil {
		api.Get("/stats", h.Stats.GetStatistics)
	}
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные в хендлерах (404 маршрута, 405, паники)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code := "HTTP_ERROR"
			if fe.Code == fiber.StatusNotFound {
				code = errors.ErrNotFound.Code
			}
			return utils.SendError(c, errors.New(code, fe.Message, fe.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
