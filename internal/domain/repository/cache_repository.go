package repository

import (
	"context"
	"time"

	"github.com/surfquest-catalog/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil, nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetSurfZones получает закешированную коллекцию зон по ключу коллекции
	GetSurfZones(ctx context.Context, key string) ([]domain.SurfZone, error)

	// SetSurfZones сохраняет коллекцию зон
	SetSurfZones(ctx context.Context, key string, zones []domain.SurfZone, ttl time.Duration) error

	// GetSurfSpots получает закешированную коллекцию спотов
	GetSurfSpots(ctx context.Context, key string) ([]domain.SurfSpot, error)

	// SetSurfSpots сохраняет коллекцию спотов
	SetSurfSpots(ctx context.Context, key string, spots []domain.SurfSpot, ttl time.Duration) error

	// GetStats получает статистику каталога из кеша
	GetStats(ctx context.Context) (*domain.CatalogStats, error)

	// SetStats сохраняет статистику каталога
	SetStats(ctx context.Context, stats *domain.CatalogStats, ttl time.Duration) error
}

// StatsKey - ключ сводки каталога
const StatsKey = "stats:current"

// SurfZonesKey - ключ коллекции зон; пустой query означает полную коллекцию
func SurfZonesKey(rawQuery string) string {
	if rawQuery == "" {
		return "surfzones:all"
	}
	return SurfZonesLiteKey(rawQuery)
}

// SurfZonesLiteKey - ключ lite-выдачи зон; пустой query тоже lite
func SurfZonesLiteKey(rawQuery string) string {
	return "surfzones:lite:" + rawQuery
}

// SurfSpotsKey - ключ коллекции спотов
func SurfSpotsKey(rawQuery string) string {
	if rawQuery == "" {
		return "surfspots:all"
	}
	return SurfSpotsLiteKey(rawQuery)
}

// SurfSpotsLiteKey - ключ lite-выдачи спотов
func SurfSpotsLiteKey(rawQuery string) string {
	return "surfspots:lite:" + rawQuery
}
