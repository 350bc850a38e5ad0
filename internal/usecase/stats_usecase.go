package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/domain/repository"
	pkgerrors "github.com/surfquest-catalog/internal/pkg/errors"
)

// statsTTL - сколько живёт сводка в кеше
const statsTTL = time.Hour

// StatsUseCase считает сводку каталога по сохранённым снапшотам
type StatsUseCase struct {
	snapshots repository.SnapshotRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	snapshots repository.SnapshotRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		snapshots: snapshots,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetStatistics возвращает сводку, используя кеш когда возможно
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.CatalogStats, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetStats(ctx)
		if err == nil && cached != nil {
			uc.logger.Debug("Statistics fetched from cache")
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
		}
	}

	stats, err := uc.snapshots.Stats(ctx)
	if err != nil {
		return nil, pkgerrors.ErrDatabaseError.Wrap(fmt.Errorf("get statistics from db: %w", err))
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetStats(ctx, stats, statsTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return stats, nil
}
