package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/filter"
	"github.com/surfquest-catalog/internal/pkg/errors"
	"github.com/surfquest-catalog/internal/pkg/utils"
	"github.com/surfquest-catalog/internal/pkg/validator"
	"github.com/surfquest-catalog/internal/usecase"
)

// CatalogHandler обрабатывает запросы каталога зон и спотов
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
	now       func() time.Time
}

// NewCatalogHandler создает новый экземпляр CatalogHandler
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
		now:       time.Now,
	}
}

// GetOptions godoc
// @Summary Filter options
// @Description Списки значений всех фасетов фильтров зон и спотов
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=catalog.Options}
// @Router /api/v1/catalog/options [get]
func (h *CatalogHandler) GetOptions(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.catalogUC.Options(), nil)
}

// GetCountries godoc
// @Summary Countries
// @Description Отсортированный список стран, в которых есть серф-зоны
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/catalog/countries [get]
func (h *CatalogHandler) GetCountries(c *fiber.Ctx) error {
	countries, err := h.catalogUC.Countries(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to get countries", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, countries, &utils.Meta{Total: len(countries)})
}

// ListSurfZones godoc
// @Summary Filter surf zones in memory
// @Description Полная коллекция зон, отфильтрованная по фасетам из query (month, bestMonths, country, travelerType, safety, comfort, cost, mainWaveDirection, surfLevel, waterTemp, surfRating, swellSize, crowdFactor, sunnyDays, rainyDays)
// @Tags SurfZones
// @Produce json
// @Param month query string false "Month, e.g. July"
// @Param bestMonths query string false "Best month"
// @Param country query string false "Country name"
// @Param waterTemp query string false "Water temperature bucket"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SurfZone}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/surfzones [get]
func (h *CatalogHandler) ListSurfZones(c *fiber.Ctx) error {
	start := time.Now()
	sel := selectionFromQuery(c, filter.ZoneFacets)

	zones, source, err := h.catalogUC.FilterSurfZones(c.UserContext(), sel)
	if err != nil {
		h.logger.Error("Failed to filter surf zones", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, zones, &utils.Meta{
		Total:    len(zones),
		Source:   source,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// SearchSurfZones godoc
// @Summary Search surf zones via backend
// @Description Фасеты переводятся в параметры lite-эндпоинта бэкенда; сезонные фасеты учитываются только при выбранном месяце
// @Tags SurfZones
// @Produce json
// @Param month query string false "Month, e.g. July"
// @Param country query string false "Country slug"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SurfZone}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/surfzones/search [get]
func (h *CatalogHandler) SearchSurfZones(c *fiber.Ctx) error {
	sel := selectionFromQuery(c, filter.ZoneFacets)

	zones, err := h.catalogUC.SearchSurfZones(c.UserContext(), sel)
	if err != nil {
		h.logger.Warn("Failed to search surf zones", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, zones, &utils.Meta{Total: len(zones)})
}

// GetBestSurfZones godoc
// @Summary Best destinations of a month
// @Description Зоны, у которых месяц входит в best_months; по умолчанию текущий месяц
// @Tags SurfZones
// @Produce json
// @Param month query string false "Month, e.g. July"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SurfZone}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/surfzones/best [get]
func (h *CatalogHandler) GetBestSurfZones(c *fiber.Ctx) error {
	month := strings.Clone(c.Query("month"))
	if err := validator.Var(month, "omitempty,month"); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"month": "month"}))
	}

	zones, source, err := h.catalogUC.MonthBestDestinations(c.UserContext(), month, h.now())
	if err != nil {
		h.logger.Error("Failed to get best destinations", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, zones, &utils.Meta{Total: len(zones), Source: source})
}

// GetSurfZone godoc
// @Summary Surf zone detail
// @Tags SurfZones
// @Produce json
// @Param id path string true "Surf zone ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.SurfZone}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/surfzones/{id} [get]
func (h *CatalogHandler) GetSurfZone(c *fiber.Ctx) error {
	zone, err := h.catalogUC.SurfZone(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, zone, nil)
}

// ListSurfSpots godoc
// @Summary Filter surf spots in memory
// @Description Полная коллекция спотов, отфильтрованная по фасетам из query (surfSpot, surfZone, breakType, waveDirection, bestWindDirection, bestSwellDirection, surfLevel, bestTide, bestMonth, bestSwellSize)
// @Tags SurfSpots
// @Produce json
// @Param surfZone query string false "Surf zone slug or name"
// @Param breakType query string false "Break type"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SurfSpot}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/surfspots [get]
func (h *CatalogHandler) ListSurfSpots(c *fiber.Ctx) error {
	start := time.Now()
	sel := selectionFromQuery(c, filter.SpotFacets)

	spots, source, err := h.catalogUC.FilterSurfSpots(c.UserContext(), sel)
	if err != nil {
		h.logger.Error("Failed to filter surf spots", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spots, &utils.Meta{
		Total:    len(spots),
		Source:   source,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// SearchSurfSpots godoc
// @Summary Search surf spots via backend
// @Tags SurfSpots
// @Produce json
// @Param surfZone query string false "Surf zone slug"
// @Param bestSwellSize query string false "Swell size bucket"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SurfSpot}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/surfspots/search [get]
func (h *CatalogHandler) SearchSurfSpots(c *fiber.Ctx) error {
	sel := selectionFromQuery(c, filter.SpotFacets)

	spots, err := h.catalogUC.SearchSurfSpots(c.UserContext(), sel)
	if err != nil {
		h.logger.Warn("Failed to search surf spots", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, spots, &utils.Meta{Total: len(spots)})
}

// GetSurfSpot godoc
// @Summary Surf spot detail
// @Tags SurfSpots
// @Produce json
// @Param id path string true "Surf spot ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.SurfSpot}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/surfspots/{id} [get]
func (h *CatalogHandler) GetSurfSpot(c *fiber.Ctx) error {
	spot, err := h.catalogUC.SurfSpot(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, spot, nil)
}
