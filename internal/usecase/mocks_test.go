package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/surfquest-catalog/internal/domain"
)

// MockSurfAPIRepository is a mock of SurfAPIRepository
type MockSurfAPIRepository struct {
	mock.Mock
}

func (m *MockSurfAPIRepository) ListSurfZones(ctx context.Context) ([]domain.SurfZone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurfZone), args.Error(1)
}

func (m *MockSurfAPIRepository) ListSurfZonesLite(ctx context.Context, rawQuery string) ([]domain.SurfZone, error) {
	args := m.Called(ctx, rawQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurfZone), args.Error(1)
}

func (m *MockSurfAPIRepository) GetSurfZone(ctx context.Context, id string) (*domain.SurfZone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SurfZone), args.Error(1)
}

func (m *MockSurfAPIRepository) ListSurfSpots(ctx context.Context) ([]domain.SurfSpot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurfSpot), args.Error(1)
}

func (m *MockSurfAPIRepository) ListSurfSpotsLite(ctx context.Context, rawQuery string) ([]domain.SurfSpot, error) {
	args := m.Called(ctx, rawQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurfSpot), args.Error(1)
}

func (m *MockSurfAPIRepository) GetSurfSpot(ctx context.Context, id string) (*domain.SurfSpot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SurfSpot), args.Error(1)
}

func (m *MockSurfAPIRepository) ListReviews(ctx context.Context, q domain.ReviewQuery) ([]domain.Review, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockSurfAPIRepository) ListUserReviews(ctx context.Context, token string) ([]domain.Review, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockSurfAPIRepository) CreateUserReview(ctx context.Context, token string, input domain.ReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockSurfAPIRepository) UpdateUserReview(ctx context.Context, token, id string, input domain.ReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, token, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockSurfAPIRepository) DeleteUserReview(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockSurfAPIRepository) ObtainTokens(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockSurfAPIRepository) RefreshToken(ctx context.Context, refresh string) (*domain.TokenPair, error) {
	args := m.Called(ctx, refresh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockSurfAPIRepository) RegisterUser(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetSurfZones(ctx context.Context, key string) ([]domain.SurfZone, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurfZone), args.Error(1)
}

func (m *MockCacheRepository) SetSurfZones(ctx context.Context, key string, zones []domain.SurfZone, ttl time.Duration) error {
	args := m.Called(ctx, key, zones, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSurfSpots(ctx context.Context, key string) ([]domain.SurfSpot, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurfSpot), args.Error(1)
}

func (m *MockCacheRepository) SetSurfSpots(ctx context.Context, key string, spots []domain.SurfSpot, ttl time.Duration) error {
	args := m.Called(ctx, key, spots, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.CatalogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogStats), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.CatalogStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

// MockSnapshotRepository is a mock of SnapshotRepository
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Save(ctx context.Context, snapshot *domain.CatalogSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Latest(ctx context.Context, kind domain.SnapshotKind) (*domain.CatalogSnapshot, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogStats), args.Error(1)
}

func ptrString(s string) *string {
	return &s
}
