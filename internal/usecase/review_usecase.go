package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/domain/repository"
	pkgerrors "github.com/surfquest-catalog/internal/pkg/errors"
)

const (
	minRating     = 1
	maxRating     = 5
	maxCommentLen = 2000
)

// ReviewUseCase - публичные отзывы и отзывы текущего пользователя
type ReviewUseCase struct {
	api    repository.SurfAPIRepository
	logger *zap.Logger
}

// NewReviewUseCase создает новый экземпляр ReviewUseCase
func NewReviewUseCase(api repository.SurfAPIRepository, logger *zap.Logger) *ReviewUseCase {
	return &ReviewUseCase{
		api:    api,
		logger: logger,
	}
}

// List возвращает публичные отзывы по зоне и/или споту
func (uc *ReviewUseCase) List(ctx context.Context, q domain.ReviewQuery) ([]domain.Review, error) {
	reviews, err := uc.api.ListReviews(ctx, q)
	if err != nil {
		return nil, backendError(err)
	}
	return nonNilReviews(reviews), nil
}

// ListMine возвращает отзывы владельца токена
func (uc *ReviewUseCase) ListMine(ctx context.Context, token string) ([]domain.Review, error) {
	if token == "" {
		return nil, pkgerrors.ErrUnauthorized
	}
	reviews, err := uc.api.ListUserReviews(ctx, token)
	if err != nil {
		return nil, backendError(err)
	}
	return nonNilReviews(reviews), nil
}

// Create создаёт отзыв от имени владельца токена
func (uc *ReviewUseCase) Create(ctx context.Context, token string, input domain.ReviewInput) (*domain.Review, error) {
	if token == "" {
		return nil, pkgerrors.ErrUnauthorized
	}
	if err := ValidateReviewInput(input); err != nil {
		return nil, err
	}

	review, err := uc.api.CreateUserReview(ctx, token, input)
	if err != nil {
		uc.logger.Warn("Failed to create review", zap.Error(err))
		return nil, backendError(err)
	}
	return review, nil
}

// Update обновляет отзыв владельца токена
func (uc *ReviewUseCase) Update(ctx context.Context, token, id string, input domain.ReviewInput) (*domain.Review, error) {
	if token == "" {
		return nil, pkgerrors.ErrUnauthorized
	}
	if err := ValidateReviewInput(input); err != nil {
		return nil, err
	}

	review, err := uc.api.UpdateUserReview(ctx, token, id, input)
	if err != nil {
		return nil, reviewError(err)
	}
	return review, nil
}

// Delete удаляет отзыв владельца токена
func (uc *ReviewUseCase) Delete(ctx context.Context, token, id string) error {
	if token == "" {
		return pkgerrors.ErrUnauthorized
	}
	if err := uc.api.DeleteUserReview(ctx, token, id); err != nil {
		return reviewError(err)
	}
	return nil
}

// ValidateReviewInput - ровно одна цель (зона или спот), рейтинг 1..5, комментарий до 2000 символов
func ValidateReviewInput(input domain.ReviewInput) error {
	hasZone := input.SurfZone != nil && strings.TrimSpace(*input.SurfZone) != ""
	hasSpot := input.SurfSpot != nil && strings.TrimSpace(*input.SurfSpot) != ""

	if hasZone == hasSpot {
		return pkgerrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"target": "exactly one of surf_zone or surf_spot is required",
		})
	}
	if input.Rating < minRating || input.Rating > maxRating {
		return pkgerrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"rating": "must be between 1 and 5",
		})
	}
	if utf8.RuneCountInString(input.Comment) > maxCommentLen {
		return pkgerrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"comment": "must be at most 2000 characters",
		})
	}
	return nil
}

// FindUserReview возвращает отзыв пользователя userID или nil
func FindUserReview(reviews []domain.Review, userID string) *domain.Review {
	if userID == "" {
		return nil
	}
	for i := range reviews {
		if reviews[i].User != nil && reviews[i].User.ID == userID {
			return &reviews[i]
		}
	}
	return nil
}

// FilterByContext оставляет отзывы о зоне zoneName или о споте spotName.
// Пустое имя не участвует в сравнении; если оба пусты, возвращается копия списка.
func FilterByContext(reviews []domain.Review, zoneName, spotName string) []domain.Review {
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if zoneName == "" && spotName == "" {
			out = append(out, r)
			continue
		}
		if zoneName != "" && r.SurfZoneDetails != nil && r.SurfZoneDetails.Name == zoneName {
			out = append(out, r)
			continue
		}
		if spotName != "" && r.SurfSpotDetails != nil && r.SurfSpotDetails.Name == spotName {
			out = append(out, r)
		}
	}
	return out
}

// reviewError - 404 бэкенда на операциях с отзывом означает отсутствие отзыва у пользователя
func reviewError(err error) error {
	mapped := backendError(err)
	if appErr, ok := pkgerrors.As(mapped); ok && appErr.Code == pkgerrors.ErrNotFound.Code {
		return pkgerrors.ErrReviewNotFound.Wrap(err)
	}
	return mapped
}

func nonNilReviews(reviews []domain.Review) []domain.Review {
	if reviews == nil {
		return []domain.Review{}
	}
	return reviews
}
