package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/filter"
	"github.com/surfquest-catalog/internal/infrastructure/surfapi"
	pkgerrors "github.com/surfquest-catalog/internal/pkg/errors"
	"github.com/surfquest-catalog/internal/usecase"
	"github.com/surfquest-catalog/internal/usecase/dto"
)

var testCatalogConfig = usecase.CatalogConfig{CatalogTTL: 10 * time.Minute, LiteTTL: time.Minute}

func testZones() []domain.SurfZone {
	return []domain.SurfZone{
		{
			ID:         "z1",
			Name:       "Hossegor",
			Slug:       "hossegor",
			Country:    &domain.Country{Name: "France"},
			BestMonths: domain.StringSet{"September", "October"},
		},
		{
			ID:         "z2",
			Name:       "Ericeira",
			Slug:       "ericeira",
			Country:    &domain.Country{Name: "Portugal"},
			BestMonths: domain.StringSet{"October", "November"},
		},
		{
			ID:         "z3",
			Name:       "Biarritz",
			Slug:       "biarritz",
			Country:    &domain.Country{Name: "France"},
			BestMonths: domain.StringSet{"September"},
		},
		{ID: "z4", Name: "Nowhere", Slug: "nowhere"},
	}
}

func TestCatalogUseCase_SurfZones_CacheHit(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	cacheRepo := &MockCacheRepository{}
	snapshots := &MockSnapshotRepository{}

	cacheRepo.On("GetSurfZones", ctx, "surfzones:all").Return(testZones(), nil)

	uc := usecase.NewCatalogUseCase(api, cacheRepo, snapshots, nil, testCatalogConfig, zap.NewNop())

	zones, source, err := uc.LoadSurfZones(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, 4)
	assert.Equal(t, dto.SourceCache, source)
	api.AssertNotCalled(t, "ListSurfZones", mock.Anything)
	snapshots.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCatalogUseCase_SurfZones_BackendStoresCacheAndSnapshot(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	cacheRepo := &MockCacheRepository{}
	snapshots := &MockSnapshotRepository{}

	cacheRepo.On("GetSurfZones", ctx, "surfzones:all").Return(nil, nil)
	api.On("ListSurfZones", ctx).Return(testZones(), nil)
	cacheRepo.On("SetSurfZones", ctx, "surfzones:all", mock.Anything, 10*time.Minute).Return(nil)
	snapshots.On("Save", ctx, mock.MatchedBy(func(s *domain.CatalogSnapshot) bool {
		var decoded []domain.SurfZone
		return s.Kind == domain.SnapshotSurfZones &&
			s.ItemCount == 4 &&
			json.Unmarshal(s.Payload, &decoded) == nil &&
			len(decoded) == 4
	})).Return(nil)

	uc := usecase.NewCatalogUseCase(api, cacheRepo, snapshots, nil, testCatalogConfig, zap.NewNop())

	zones, source, err := uc.LoadSurfZones(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, 4)
	assert.Equal(t, dto.SourceBackend, source)

	api.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
	snapshots.AssertExpectations(t)
}

func TestCatalogUseCase_SurfZones_CacheAndSnapshotFailuresAreNotFatal(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	cacheRepo := &MockCacheRepository{}
	snapshots := &MockSnapshotRepository{}

	cacheRepo.On("GetSurfZones", ctx, "surfzones:all").Return(nil, errors.New("redis down"))
	api.On("ListSurfZones", ctx).Return(testZones(), nil)
	cacheRepo.On("SetSurfZones", ctx, "surfzones:all", mock.Anything, mock.Anything).Return(errors.New("redis down"))
	snapshots.On("Save", ctx, mock.Anything).Return(errors.New("db down"))

	uc := usecase.NewCatalogUseCase(api, cacheRepo, snapshots, nil, testCatalogConfig, zap.NewNop())

	zones, err := uc.SurfZones(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, 4)
}

func TestCatalogUseCase_SurfZones_FallsBackToSnapshot(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	cacheRepo := &MockCacheRepository{}
	snapshots := &MockSnapshotRepository{}

	payload, err := json.Marshal(testZones()[:2])
	require.NoError(t, err)

	cacheRepo.On("GetSurfZones", ctx, "surfzones:all").Return(nil, nil)
	api.On("ListSurfZones", ctx).Return(nil, &surfapi.APIError{StatusCode: 502, Detail: "bad gateway"})
	snapshots.On("Latest", ctx, domain.SnapshotSurfZones).Return(&domain.CatalogSnapshot{
		Kind:      domain.SnapshotSurfZones,
		Payload:   payload,
		ItemCount: 2,
		FetchedAt: time.Now().Add(-time.Hour),
	}, nil)

	uc := usecase.NewCatalogUseCase(api, cacheRepo, snapshots, nil, testCatalogConfig, zap.NewNop())

	zones, source, err := uc.LoadSurfZones(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.SourceSnapshot, source)
	require.Len(t, zones, 2)
	assert.Equal(t, "Hossegor", zones[0].Name)
	assert.Equal(t, "France", zones[0].CountryName())
}

func TestCatalogUseCase_SurfSpots_NoSnapshotIsUnavailable(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	snapshots := &MockSnapshotRepository{}

	api.On("ListSurfSpots", ctx).Return(nil, errors.New("dial tcp: connection refused"))
	snapshots.On("Latest", ctx, domain.SnapshotSurfSpots).Return(nil, nil)

	uc := usecase.NewCatalogUseCase(api, nil, snapshots, nil, testCatalogConfig, zap.NewNop())

	_, err := uc.SurfSpots(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrBackendUnavailable)
}

func TestCatalogUseCase_WithoutCacheOrSnapshots(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	api.On("ListSurfSpots", ctx).Return(nil, nil)

	uc := usecase.NewCatalogUseCase(api, nil, nil, nil, testCatalogConfig, zap.NewNop())

	spots, source, err := uc.LoadSurfSpots(ctx)
	require.NoError(t, err)
	assert.NotNil(t, spots)
	assert.Empty(t, spots)
	assert.Equal(t, dto.SourceBackend, source)
}

func TestCatalogUseCase_FilterSurfZones(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	api.On("ListSurfZones", ctx).Return(testZones(), nil)

	uc := usecase.NewCatalogUseCase(api, nil, nil, nil, testCatalogConfig, zap.NewNop())

	zones, _, err := uc.FilterSurfZones(ctx, filter.Selection{filter.Country: "France"})
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, "hossegor", zones[0].Slug)
	assert.Equal(t, "biarritz", zones[1].Slug)
}

func TestCatalogUseCase_SearchSurfZones(t *testing.T) {
	ctx := context.Background()

	t.Run("builds query and applies matching bestMonths locally", func(t *testing.T) {
		api := &MockSurfAPIRepository{}
		cacheRepo := &MockCacheRepository{}

		rawQuery := "country_slug=France&month=September"
		cacheRepo.On("GetSurfZones", ctx, "surfzones:lite:"+rawQuery).Return(nil, nil)
		api.On("ListSurfZonesLite", mock.Anything, rawQuery).Return(testZones(), nil)
		cacheRepo.On("SetSurfZones", ctx, "surfzones:lite:"+rawQuery, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewCatalogUseCase(api, cacheRepo, nil, nil, testCatalogConfig, zap.NewNop())

		zones, err := uc.SearchSurfZones(ctx, filter.Selection{
			filter.Country:    "France",
			filter.Month:      "September",
			filter.BestMonths: "September",
		})
		require.NoError(t, err)
		require.Len(t, zones, 2)
		assert.Equal(t, "hossegor", zones[0].Slug)
		assert.Equal(t, "biarritz", zones[1].Slug)
		api.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("bestMonths different from month is ignored", func(t *testing.T) {
		api := &MockSurfAPIRepository{}
		api.On("ListSurfZonesLite", mock.Anything, "month=July").Return(testZones(), nil)

		uc := usecase.NewCatalogUseCase(api, nil, nil, nil, testCatalogConfig, zap.NewNop())

		zones, err := uc.SearchSurfZones(ctx, filter.Selection{
			filter.Month:      "July",
			filter.BestMonths: "October",
		})
		require.NoError(t, err)
		assert.Len(t, zones, 4)
	})

	t.Run("lite cache hit skips backend", func(t *testing.T) {
		api := &MockSurfAPIRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetSurfZones", ctx, "surfzones:lite:").Return(testZones()[:1], nil)

		uc := usecase.NewCatalogUseCase(api, cacheRepo, nil, nil, testCatalogConfig, zap.NewNop())

		zones, err := uc.SearchSurfZones(ctx, filter.Selection{})
		require.NoError(t, err)
		assert.Len(t, zones, 1)
		api.AssertNotCalled(t, "ListSurfZonesLite", mock.Anything, mock.Anything)
	})

	t.Run("backend client error keeps detail", func(t *testing.T) {
		api := &MockSurfAPIRepository{}
		api.On("ListSurfZonesLite", mock.Anything, "month=July").
			Return(nil, &surfapi.APIError{StatusCode: 400, Detail: "Unknown month"})

		uc := usecase.NewCatalogUseCase(api, nil, nil, nil, testCatalogConfig, zap.NewNop())

		_, err := uc.SearchSurfZones(ctx, filter.Selection{filter.Month: "July"})
		appErr, ok := pkgerrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "BACKEND_ERROR", appErr.Code)
		assert.Equal(t, "Unknown month", appErr.Message)
	})
}

func TestCatalogUseCase_SearchSurfSpots(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	spots := []domain.SurfSpot{{ID: "s1", Slug: "la-graviere"}}
	api.On("ListSurfSpotsLite", mock.Anything, "surfzone_slug=hossegor&break_type=Beach+break").Return(spots, nil)

	uc := usecase.NewCatalogUseCase(api, nil, nil, nil, testCatalogConfig, zap.NewNop())

	got, err := uc.SearchSurfSpots(ctx, filter.Selection{
		filter.SurfZone:  "hossegor",
		filter.BreakType: "Beach break",
	})
	require.NoError(t, err)
	assert.Equal(t, spots, got)
}

func TestCatalogUseCase_MonthBestDestinations(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	api.On("ListSurfZones", ctx).Return(testZones(), nil)

	uc := usecase.NewCatalogUseCase(api, nil, nil, nil, testCatalogConfig, zap.NewNop())

	zones, _, err := uc.MonthBestDestinations(ctx, "October", time.Now())
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, "hossegor", zones[0].Slug)
	assert.Equal(t, "ericeira", zones[1].Slug)

	now := time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)
	zones, _, err = uc.MonthBestDestinations(ctx, "", now)
	require.NoError(t, err)
	assert.Len(t, zones, 2, "empty month means the current month")
}

func TestCatalogUseCase_Countries(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	api.On("ListSurfZones", ctx).Return(testZones(), nil)

	uc := usecase.NewCatalogUseCase(api, nil, nil, nil, testCatalogConfig, zap.NewNop())

	countries, err := uc.Countries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"France", "Portugal"}, countries)
}

func TestCatalogUseCase_Details(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	api.On("GetSurfZone", ctx, "z1").Return(&testZones()[0], nil)
	api.On("GetSurfSpot", ctx, "missing").Return(nil, &surfapi.APIError{StatusCode: 404, Detail: "Not found."})

	uc := usecase.NewCatalogUseCase(api, nil, nil, nil, testCatalogConfig, zap.NewNop())

	zone, err := uc.SurfZone(ctx, "z1")
	require.NoError(t, err)
	assert.Equal(t, "Hossegor", zone.Name)

	_, err = uc.SurfSpot(ctx, "missing")
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestCatalogUseCase_RefreshCollections(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	cacheRepo := &MockCacheRepository{}
	snapshots := &MockSnapshotRepository{}

	spots := []domain.SurfSpot{{ID: "s1"}, {ID: "s2"}}
	api.On("ListSurfZones", ctx).Return(testZones(), nil)
	api.On("ListSurfSpots", ctx).Return(spots, nil)
	cacheRepo.On("SetSurfZones", ctx, "surfzones:all", mock.Anything, 10*time.Minute).Return(nil)
	cacheRepo.On("SetSurfSpots", ctx, "surfspots:all", spots, 10*time.Minute).Return(nil)
	cacheRepo.On("Delete", ctx, "stats:current").Return(nil)
	snapshots.On("Save", ctx, mock.MatchedBy(func(s *domain.CatalogSnapshot) bool {
		return s.Kind == domain.SnapshotSurfZones && s.ItemCount == 4
	})).Return(nil).Once()
	snapshots.On("Save", ctx, mock.MatchedBy(func(s *domain.CatalogSnapshot) bool {
		return s.Kind == domain.SnapshotSurfSpots && s.ItemCount == 2
	})).Return(nil).Once()

	uc := usecase.NewCatalogUseCase(api, cacheRepo, snapshots, nil, testCatalogConfig, zap.NewNop())

	zonesCount, spotsCount, err := uc.RefreshCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, zonesCount)
	assert.Equal(t, 2, spotsCount)

	api.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
	snapshots.AssertExpectations(t)
}

func TestCatalogUseCase_RefreshCollections_BackendError(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	api.On("ListSurfZones", ctx).Return(nil, errors.New("timeout"))

	uc := usecase.NewCatalogUseCase(api, nil, nil, nil, testCatalogConfig, zap.NewNop())

	_, _, err := uc.RefreshCollections(ctx)
	assert.ErrorContains(t, err, "refresh surf zones")
}

func TestCatalogUseCase_Options(t *testing.T) {
	uc := usecase.NewCatalogUseCase(&MockSurfAPIRepository{}, nil, nil, nil, testCatalogConfig, zap.NewNop())

	opts := uc.Options()
	assert.Len(t, opts.SurfZones.Months, 12)
	assert.NotEmpty(t, opts.SurfSpots.BreakType)
}
