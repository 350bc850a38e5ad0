package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/worker"
)

// DefaultRefreshInterval - период обновления коллекций, если интервал не задан
const DefaultRefreshInterval = 15 * time.Minute

// Refresher перекачивает полные коллекции из backend в кэш и снапшоты
type Refresher interface {
	RefreshCollections(ctx context.Context) (zones int, spots int, err error)
}

// CatalogRefreshWorker периодически обновляет кэш и снапшоты каталога,
// чтобы API отвечал из кэша даже при недоступном backend
type CatalogRefreshWorker struct {
	*worker.BaseWorker
	refresher Refresher
}

// NewCatalogRefreshWorker создает CatalogRefreshWorker
func NewCatalogRefreshWorker(refresher Refresher, interval time.Duration, logger *zap.Logger) *CatalogRefreshWorker {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &CatalogRefreshWorker{
		BaseWorker: worker.NewBaseWorker("catalog-refresh", interval, logger),
		refresher:  refresher,
	}
}

// Start выполняет обновление сразу и затем раз в интервал
func (w *CatalogRefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CatalogRefreshWorker", zap.Duration("interval", w.Interval()))

	ticker := time.NewTicker(w.Interval())
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

// refresh ошибки только логирует: следующий тик повторит попытку
func (w *CatalogRefreshWorker) refresh(ctx context.Context) {
	start := time.Now()

	zones, spots, err := w.refresher.RefreshCollections(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.Logger().Error("Catalog refresh failed", zap.Error(err))
		return
	}

	w.Logger().Info("Catalog refreshed",
		zap.Int("surf_zones", zones),
		zap.Int("surf_spots", spots),
		zap.Duration("took", time.Since(start)))
}
