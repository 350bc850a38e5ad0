package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}
	return n > 0, nil
}

// getJSON декодирует значение ключа в out; false при промахе
func (r *cacheRepository) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil || data == nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		r.logger.Warn("Dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		_ = r.Delete(ctx, key)
		return false, nil
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal cache value: %w", err)
	}
	return r.Set(ctx, key, data, ttl)
}

// GetSurfZones возвращает nil, nil при промахе
func (r *cacheRepository) GetSurfZones(ctx context.Context, key string) ([]domain.SurfZone, error) {
	var zones []domain.SurfZone
	ok, err := r.getJSON(ctx, key, &zones)
	if err != nil || !ok {
		return nil, err
	}
	if zones == nil {
		zones = []domain.SurfZone{}
	}
	return zones, nil
}

func (r *cacheRepository) SetSurfZones(ctx context.Context, key string, zones []domain.SurfZone, ttl time.Duration) error {
	return r.setJSON(ctx, key, zones, ttl)
}

// GetSurfSpots возвращает nil, nil при промахе
func (r *cacheRepository) GetSurfSpots(ctx context.Context, key string) ([]domain.SurfSpot, error) {
	var spots []domain.SurfSpot
	ok, err := r.getJSON(ctx, key, &spots)
	if err != nil || !ok {
		return nil, err
	}
	if spots == nil {
		spots = []domain.SurfSpot{}
	}
	return spots, nil
}

func (r *cacheRepository) SetSurfSpots(ctx context.Context, key string, spots []domain.SurfSpot, ttl time.Duration) error {
	return r.setJSON(ctx, key, spots, ttl)
}

// GetStats получает статистику каталога из кеша
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.CatalogStats, error) {
	var stats domain.CatalogStats
	ok, err := r.getJSON(ctx, repository.StatsKey, &stats)
	if err != nil || !ok {
		return nil, err
	}
	return &stats, nil
}

// SetStats сохраняет статистику каталога
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.CatalogStats, ttl time.Duration) error {
	return r.setJSON(ctx, repository.StatsKey, stats, ttl)
}
