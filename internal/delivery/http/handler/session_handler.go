package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/pkg/errors"
	"github.com/surfquest-catalog/internal/pkg/utils"
	"github.com/surfquest-catalog/internal/pkg/validator"
	"github.com/surfquest-catalog/internal/usecase"
	"github.com/surfquest-catalog/internal/usecase/dto"
)

// SessionHandler обрабатывает запросы серверных сессий фильтров
type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

// NewSessionHandler создает новый экземпляр SessionHandler
func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// CreateSession godoc
// @Summary Open a filter session
// @Description Создаёт сессию фильтров страницы (home, surfzones, surfzones-explore, surfspots, surfspots-explore) и загружает первые результаты
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Page"
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sessionUC.Create(c.UserContext(), req.Page)
	if err != nil {
		h.logger.Error("Failed to create session", zap.String("page", req.Page), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}

// GetSession godoc
// @Summary Filter session state
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param wait query bool false "Wait for the pending search"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	resp, err := h.sessionUC.Get(c.UserContext(), c.Params("id"), waitParam(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// SetFilter godoc
// @Summary Change one facet
// @Description Устанавливает значение фасета; пустое значение снимает фильтр. Поле effect подсказывает, куда прокрутить страницу.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param wait query bool false "Wait for the pending search"
// @Param request body dto.SetFilterRequest true "Facet and value"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/filters [put]
func (h *SessionHandler) SetFilter(c *fiber.Ctx) error {
	var req dto.SetFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sessionUC.SetFilter(c.UserContext(), c.Params("id"), req.Key, req.Value, waitParam(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// ResetSession godoc
// @Summary Reset filters
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param wait query bool false "Wait for the pending search"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/reset [post]
func (h *SessionHandler) ResetSession(c *fiber.Ctx) error {
	resp, err := h.sessionUC.Reset(c.UserContext(), c.Params("id"), waitParam(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// DeleteSession godoc
// @Summary Close a filter session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.sessionUC.Delete(c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
