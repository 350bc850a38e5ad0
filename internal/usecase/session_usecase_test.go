package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/domain"
	pkgerrors "github.com/surfquest-catalog/internal/pkg/errors"
	"github.com/surfquest-catalog/internal/session"
	"github.com/surfquest-catalog/internal/usecase"
)

func newSessionUseCase(t *testing.T, api *MockSurfAPIRepository) *usecase.SessionUseCase {
	t.Helper()

	catalogUC := usecase.NewCatalogUseCase(api, nil, nil, nil, testCatalogConfig, zap.NewNop())
	now := func() time.Time { return time.Date(2024, time.September, 3, 10, 0, 0, 0, time.UTC) }
	manager := session.NewManager(catalogUC, session.ManagerConfig{Debounce: time.Millisecond, Now: now}, zap.NewNop())
	t.Cleanup(manager.Close)

	return usecase.NewSessionUseCase(manager, zap.NewNop())
}

func TestSessionUseCase_HomePage(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	api.On("ListSurfZones", mock.Anything).Return(testZones(), nil)

	uc := newSessionUseCase(t, api)

	created, err := uc.Create(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "in-memory", created.Strategy)
	assert.Equal(t, "September", created.Selection.Get("month"))
	assert.Equal(t, "September", created.Selection.Get("bestMonths"))
	assert.Equal(t, 2, created.Total)
	require.NotNil(t, created.UpdatedAt)

	updated, err := uc.SetFilter(ctx, created.ID, "country", "Portugal", false)
	require.NoError(t, err)
	assert.Equal(t, "results", updated.Effect)
	assert.Equal(t, 0, updated.Total, "Ericeira is not best in September")

	updated, err = uc.SetFilter(ctx, created.ID, "month", "", false)
	require.NoError(t, err)
	assert.Equal(t, "month-filters", updated.Effect)

	reset, err := uc.Reset(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 2, reset.Total)
	assert.Equal(t, "", reset.Selection.Get("country"))

	api.AssertNumberOfCalls(t, "ListSurfZones", 1)
}

func TestSessionUseCase_QueryPage(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	api.On("ListSurfSpotsLite", mock.Anything, "").Return([]domain.SurfSpot{{ID: "s1"}, {ID: "s2"}}, nil)
	api.On("ListSurfSpotsLite", mock.Anything, "break_type=Reef+break").Return([]domain.SurfSpot{{ID: "s2"}}, nil)

	uc := newSessionUseCase(t, api)

	created, err := uc.Create(ctx, "surfspots")
	require.NoError(t, err)
	assert.Equal(t, "query", created.Strategy)
	assert.Equal(t, 2, created.Total)

	updated, err := uc.SetFilter(ctx, created.ID, "breakType", "Reef break", true)
	require.NoError(t, err)
	assert.False(t, updated.Loading)
	require.Len(t, updated.SurfSpots, 1)
	assert.Equal(t, "s2", updated.SurfSpots[0].ID)

	got, err := uc.Get(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, updated.Generation, got.Generation)
}

func TestSessionUseCase_Errors(t *testing.T) {
	ctx := context.Background()
	api := &MockSurfAPIRepository{}
	api.On("ListSurfSpots", mock.Anything).Return([]domain.SurfSpot{}, nil)

	uc := newSessionUseCase(t, api)

	_, err := uc.Create(ctx, "checkout")
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidRequest)

	_, err = uc.Get(ctx, "missing", false)
	assert.ErrorIs(t, err, pkgerrors.ErrSessionNotFound)

	created, err := uc.Create(ctx, "surfspots-explore")
	require.NoError(t, err)

	_, err = uc.SetFilter(ctx, created.ID, "waterTemp", "Warm", false)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidFilter, "zone facet on a spot page")

	require.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), pkgerrors.ErrSessionNotFound)
	_, err = uc.Reset(ctx, created.ID, false)
	assert.ErrorIs(t, err, pkgerrors.ErrSessionNotFound)
}
