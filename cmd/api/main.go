package main

// @title SurfQuest Catalog API
// @version 1.0.0
// @description Каталог серф-зон и спотов SurfQuest: фильтрация по сезонным условиям, серверные сессии фильтров, отзывы и авторизация через основной API.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/surfquest-catalog/docs/swagger"
	"github.com/surfquest-catalog/internal/config"
	httpDelivery "github.com/surfquest-catalog/internal/delivery/http"
	"github.com/surfquest-catalog/internal/delivery/http/handler"
	"github.com/surfquest-catalog/internal/infrastructure/surfapi"
	"github.com/surfquest-catalog/internal/pkg/logger"
	"github.com/surfquest-catalog/internal/repository/cache"
	"github.com/surfquest-catalog/internal/repository/postgres"
	"github.com/surfquest-catalog/internal/session"
	"github.com/surfquest-catalog/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "surfquest-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SurfQuest Catalog API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	// 3. Connect to PostgreSQL (снапшоты каталога)
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	cancel()

	log.Info("All connections healthy")

	// 6. Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	snapshotRepo := postgres.NewSnapshotRepository(db, log)
	api := surfapi.NewClient(&cfg.Backend, log)

	// 7. Use cases
	catalogUC := usecase.NewCatalogUseCase(api, cacheRepo, snapshotRepo, nil, usecase.CatalogConfig{
		CatalogTTL: cfg.Cache.CatalogTTL,
		LiteTTL:    cfg.Cache.LiteTTL,
	}, log)
	statsUC := usecase.NewStatsUseCase(snapshotRepo, cacheRepo, log)
	reviewUC := usecase.NewReviewUseCase(api, log)
	authUC := usecase.NewAuthUseCase(api, log)

	sessions := session.NewManager(catalogUC, session.ManagerConfig{
		Debounce: cfg.Session.Debounce,
		IdleTTL:  cfg.Session.IdleTTL,
	}, log, session.WithCatalog(catalogUC.Catalog()))

	evictCtx, stopEvict := context.WithCancel(context.Background())
	defer stopEvict()
	go sessions.Run(evictCtx, 0)

	sessionUC := usecase.NewSessionUseCase(sessions, log)

	log.Info("Use cases initialized")

	// 8. HTTP server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Catalog: handler.NewCatalogHandler(catalogUC, log),
		Session: handler.NewSessionHandler(sessionUC, log),
		Review:  handler.NewReviewHandler(reviewUC, log),
		Auth:    handler.NewAuthHandler(authUC, log),
		Stats:   handler.NewStatsHandler(statsUC, log),
	})

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	stopEvict()
	sessions.Close()

	log.Info("Server stopped successfully")
}
