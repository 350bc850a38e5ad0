package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/pkg/errors"
	"github.com/surfquest-catalog/internal/pkg/utils"
	"github.com/surfquest-catalog/internal/pkg/validator"
	"github.com/surfquest-catalog/internal/usecase"
	"github.com/surfquest-catalog/internal/usecase/dto"
)

// ReviewHandler обрабатывает запросы отзывов
type ReviewHandler struct {
	reviewUC *usecase.ReviewUseCase
	logger   *zap.Logger
}

// NewReviewHandler создает новый экземпляр ReviewHandler
func NewReviewHandler(reviewUC *usecase.ReviewUseCase, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: reviewUC,
		logger:   logger,
	}
}

// ListReviews godoc
// @Summary Public reviews
// @Tags Reviews
// @Produce json
// @Param surf_zone_id query string false "Surf zone ID"
// @Param surf_spot_id query string false "Surf spot ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Review}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/reviews [get]
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	var req dto.ReviewListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	reviews, err := h.reviewUC.List(c.UserContext(), domain.ReviewQuery{
		SurfZoneID: req.SurfZoneID,
		SurfSpotID: req.SurfSpotID,
	})
	if err != nil {
		h.logger.Warn("Failed to list reviews", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, reviews, &utils.Meta{Total: len(reviews)})
}

// ListMyReviews godoc
// @Summary Reviews of the current user
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Review}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/me/reviews [get]
func (h *ReviewHandler) ListMyReviews(c *fiber.Ctx) error {
	token, err := bearerToken(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	reviews, err := h.reviewUC.ListMine(c.UserContext(), token)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, reviews, &utils.Meta{Total: len(reviews)})
}

// CreateReview godoc
// @Summary Create a review
// @Description Отзыв о зоне или о споте (ровно одно из полей), рейтинг 1..5, комментарий до 2000 символов
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ReviewRequest true "Review"
// @Success 201 {object} utils.SuccessResponse{data=domain.Review}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/me/reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	token, err := bearerToken(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	input, err := parseReview(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	review, err := h.reviewUC.Create(c.UserContext(), token, input)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, review)
}

// UpdateReview godoc
// @Summary Update a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body dto.ReviewRequest true "Review"
// @Success 200 {object} utils.SuccessResponse{data=domain.Review}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/me/reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	token, err := bearerToken(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	input, err := parseReview(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	review, err := h.reviewUC.Update(c.UserContext(), token, c.Params("id"), input)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, review, nil)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags Reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/me/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	token, err := bearerToken(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.reviewUC.Delete(c.UserContext(), token, c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseReview(c *fiber.Ctx) (domain.ReviewInput, error) {
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ReviewInput{}, errors.ErrInvalidRequest
	}
	if err := validator.Validate(req); err != nil {
		return domain.ReviewInput{}, err
	}
	return domain.ReviewInput{
		SurfZone: req.SurfZone,
		SurfSpot: req.SurfSpot,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}, nil
}
