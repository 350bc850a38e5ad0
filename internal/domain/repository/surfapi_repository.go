package repository

import (
	"context"

	"github.com/surfquest-catalog/internal/domain"
)

// SurfAPIRepository определяет методы внешнего REST API SurfQuest.
// Токен доступа передаётся явно в каждый защищённый вызов.
type SurfAPIRepository interface {
	// ListSurfZones возвращает полную коллекцию зон
	ListSurfZones(ctx context.Context) ([]domain.SurfZone, error)

	// ListSurfZonesLite возвращает отфильтрованную бэкендом lite-проекцию зон
	ListSurfZonesLite(ctx context.Context, rawQuery string) ([]domain.SurfZone, error)

	// GetSurfZone возвращает детальную запись зоны
	GetSurfZone(ctx context.Context, id string) (*domain.SurfZone, error)

	// ListSurfSpots возвращает полную коллекцию спотов
	ListSurfSpots(ctx context.Context) ([]domain.SurfSpot, error)

	// ListSurfSpotsLite возвращает отфильтрованную бэкендом lite-проекцию спотов
	ListSurfSpotsLite(ctx context.Context, rawQuery string) ([]domain.SurfSpot, error)

	// GetSurfSpot возвращает детальную запись спота
	GetSurfSpot(ctx context.Context, id string) (*domain.SurfSpot, error)

	// ListReviews возвращает публичные отзывы по зоне и/или споту
	ListReviews(ctx context.Context, q domain.ReviewQuery) ([]domain.Review, error)

	// ListUserReviews возвращает отзывы владельца токена
	ListUserReviews(ctx context.Context, token string) ([]domain.Review, error)

	// CreateUserReview создаёт отзыв от имени владельца токена
	CreateUserReview(ctx context.Context, token string, input domain.ReviewInput) (*domain.Review, error)

	// UpdateUserReview обновляет отзыв владельца токена
	UpdateUserReview(ctx context.Context, token, id string, input domain.ReviewInput) (*domain.Review, error)

	// DeleteUserReview удаляет отзыв владельца токена
	DeleteUserReview(ctx context.Context, token, id string) error

	// ObtainTokens выдаёт пару JWT по логину и паролю
	ObtainTokens(ctx context.Context, username, password string) (*domain.TokenPair, error)

	// RefreshToken выдаёт новый access-токен
	RefreshToken(ctx context.Context, refresh string) (*domain.TokenPair, error)

	// RegisterUser регистрирует пользователя (multipart/form-data)
	RegisterUser(ctx context.Context, input domain.SignupInput) (*domain.User, error)
}
