package catalog_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/worker"
	"github.com/surfquest-catalog/internal/worker/catalog"
)

type MockRefresher struct {
	mock.Mock
	calls atomic.Int32
}

func (m *MockRefresher) RefreshCollections(ctx context.Context) (int, int, error) {
	m.calls.Add(1)
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

func TestCatalogRefreshWorker_Name(t *testing.T) {
	w := catalog.NewCatalogRefreshWorker(&MockRefresher{}, 0, zap.NewNop())

	assert.Equal(t, "catalog-refresh", w.Name())
	assert.Equal(t, catalog.DefaultRefreshInterval, w.Interval())
}

func TestCatalogRefreshWorker_RefreshesImmediatelyAndOnTick(t *testing.T) {
	refresher := &MockRefresher{}
	refresher.On("RefreshCollections", mock.Anything).Return(4, 12, nil)

	w := catalog.NewCatalogRefreshWorker(refresher, 10*time.Millisecond, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	assert.Eventually(t, func() bool { return refresher.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.True(t, w.IsStopped())
}

func TestCatalogRefreshWorker_KeepsRunningAfterFailure(t *testing.T) {
	refresher := &MockRefresher{}
	refresher.On("RefreshCollections", mock.Anything).Return(0, 0, errors.New("backend down"))

	w := catalog.NewCatalogRefreshWorker(refresher, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	assert.Eventually(t, func() bool { return refresher.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorkerManager_StartStop(t *testing.T) {
	refresher := &MockRefresher{}
	refresher.On("RefreshCollections", mock.Anything).Return(1, 1, nil)

	m := worker.NewWorkerManager(zap.NewNop(), time.Second)
	assert.ErrorIs(t, m.Start(context.Background()), worker.ErrNoWorkers)

	w := catalog.NewCatalogRefreshWorker(refresher, time.Hour, zap.NewNop())
	m.Register(w)
	require.NoError(t, m.Start(context.Background()))

	assert.Eventually(t, func() bool { return refresher.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.NoError(t, m.Stop())
	assert.True(t, w.IsStopped())
}
