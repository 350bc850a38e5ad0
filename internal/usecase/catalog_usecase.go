package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/catalog"
	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/domain/repository"
	"github.com/surfquest-catalog/internal/filter"
	"github.com/surfquest-catalog/internal/query"
	"github.com/surfquest-catalog/internal/usecase/dto"
)

// CatalogConfig - TTL кеша коллекций
type CatalogConfig struct {
	CatalogTTL time.Duration
	LiteTTL    time.Duration
}

// CatalogUseCase отдаёт зоны и споты каталога: полные коллекции (кеш -> бэкенд ->
// последний снапшот), фильтрацию в памяти и поиск через lite-эндпоинты бэкенда
type CatalogUseCase struct {
	api       repository.SurfAPIRepository
	cacheRepo repository.CacheRepository
	snapshots repository.SnapshotRepository
	catalog   *catalog.Catalog
	cfg       CatalogConfig
	logger    *zap.Logger
}

// NewCatalogUseCase создает новый экземпляр CatalogUseCase.
// cacheRepo и snapshots могут быть nil.
func NewCatalogUseCase(
	api repository.SurfAPIRepository,
	cacheRepo repository.CacheRepository,
	snapshots repository.SnapshotRepository,
	cat *catalog.Catalog,
	cfg CatalogConfig,
	logger *zap.Logger,
) *CatalogUseCase {
	if cat == nil {
		cat = catalog.Default()
	}
	return &CatalogUseCase{
		api:       api,
		cacheRepo: cacheRepo,
		snapshots: snapshots,
		catalog:   cat,
		cfg:       cfg,
		logger:    logger,
	}
}

// Catalog возвращает таблицы диапазонов, которыми пользуется use case
func (uc *CatalogUseCase) Catalog() *catalog.Catalog {
	return uc.catalog
}

// collection описывает, откуда брать одну коллекцию каталога
type collection[T any] struct {
	kind     domain.SnapshotKind
	key      string
	getCache func(ctx context.Context, key string) ([]T, error)
	setCache func(ctx context.Context, key string, items []T, ttl time.Duration) error
	fetch    func(ctx context.Context) ([]T, error)
}

// withCache привязывает методы кеша к коллекции; без кеша коллекция идёт сразу в бэкенд
func (c collection[T]) withCache(
	cacheRepo repository.CacheRepository,
	get func(repository.CacheRepository, context.Context, string) ([]T, error),
	set func(repository.CacheRepository, context.Context, string, []T, time.Duration) error,
) collection[T] {
	if cacheRepo == nil {
		return c
	}
	c.getCache = func(ctx context.Context, key string) ([]T, error) {
		return get(cacheRepo, ctx, key)
	}
	c.setCache = func(ctx context.Context, key string, items []T, ttl time.Duration) error {
		return set(cacheRepo, ctx, key, items, ttl)
	}
	return c
}

func loadCollection[T any](ctx context.Context, uc *CatalogUseCase, c collection[T]) ([]T, string, error) {
	// 1. Кеш
	if c.getCache != nil {
		cached, err := c.getCache(ctx, c.key)
		if err != nil {
			uc.logger.Warn("Failed to get collection from cache", zap.String("key", c.key), zap.Error(err))
		} else if cached != nil {
			uc.logger.Debug("Collection fetched from cache", zap.String("key", c.key), zap.Int("count", len(cached)))
			return cached, dto.SourceCache, nil
		}
	}

	// 2. Бэкенд
	items, fetchErr := c.fetch(ctx)
	if fetchErr == nil {
		if items == nil {
			items = []T{}
		}
		storeCollection(ctx, uc, c, items)
		return items, dto.SourceBackend, nil
	}

	if ctx.Err() != nil {
		return nil, "", ctx.Err()
	}

	// 3. Последний успешный снапшот
	if uc.snapshots != nil {
		snap, err := uc.snapshots.Latest(ctx, c.kind)
		if err != nil {
			uc.logger.Warn("Failed to read snapshot", zap.String("kind", string(c.kind)), zap.Error(err))
		} else if snap != nil {
			var fromSnapshot []T
			if err := json.Unmarshal(snap.Payload, &fromSnapshot); err != nil {
				uc.logger.Warn("Snapshot payload is invalid", zap.String("kind", string(c.kind)), zap.Error(err))
			} else {
				uc.logger.Warn("Backend unavailable, serving snapshot",
					zap.String("kind", string(c.kind)),
					zap.Time("fetched_at", snap.FetchedAt),
					zap.Error(fetchErr))
				return fromSnapshot, dto.SourceSnapshot, nil
			}
		}
	}

	return nil, "", backendError(fetchErr)
}

// storeCollection кладёт свежую коллекцию в кеш и в снапшот. Ошибки только логируются:
// данные уже получены.
func storeCollection[T any](ctx context.Context, uc *CatalogUseCase, c collection[T], items []T) {
	if c.setCache != nil {
		if err := c.setCache(ctx, c.key, items, uc.cfg.CatalogTTL); err != nil {
			uc.logger.Warn("Failed to cache collection", zap.String("key", c.key), zap.Error(err))
		}
	}

	if uc.snapshots == nil || c.kind == "" {
		return
	}

	payload, err := json.Marshal(items)
	if err != nil {
		uc.logger.Warn("Failed to marshal snapshot", zap.String("kind", string(c.kind)), zap.Error(err))
		return
	}
	snap := &domain.CatalogSnapshot{
		Kind:      c.kind,
		Payload:   payload,
		ItemCount: len(items),
	}
	if err := uc.snapshots.Save(ctx, snap); err != nil {
		uc.logger.Warn("Failed to save snapshot", zap.String("kind", string(c.kind)), zap.Error(err))
	}
}

func (uc *CatalogUseCase) zonesCollection() collection[domain.SurfZone] {
	return collection[domain.SurfZone]{
		kind:  domain.SnapshotSurfZones,
		key:   repository.SurfZonesKey(""),
		fetch: uc.api.ListSurfZones,
	}.withCache(uc.cacheRepo, repository.CacheRepository.GetSurfZones, repository.CacheRepository.SetSurfZones)
}

func (uc *CatalogUseCase) spotsCollection() collection[domain.SurfSpot] {
	return collection[domain.SurfSpot]{
		kind:  domain.SnapshotSurfSpots,
		key:   repository.SurfSpotsKey(""),
		fetch: uc.api.ListSurfSpots,
	}.withCache(uc.cacheRepo, repository.CacheRepository.GetSurfSpots, repository.CacheRepository.SetSurfSpots)
}

// SurfZones возвращает полную коллекцию зон
func (uc *CatalogUseCase) SurfZones(ctx context.Context) ([]domain.SurfZone, error) {
	zones, _, err := uc.LoadSurfZones(ctx)
	return zones, err
}

// LoadSurfZones возвращает полную коллекцию зон и её источник
func (uc *CatalogUseCase) LoadSurfZones(ctx context.Context) ([]domain.SurfZone, string, error) {
	return loadCollection(ctx, uc, uc.zonesCollection())
}

// SurfSpots возвращает полную коллекцию спотов
func (uc *CatalogUseCase) SurfSpots(ctx context.Context) ([]domain.SurfSpot, error) {
	spots, _, err := uc.LoadSurfSpots(ctx)
	return spots, err
}

// LoadSurfSpots возвращает полную коллекцию спотов и её источник
func (uc *CatalogUseCase) LoadSurfSpots(ctx context.Context) ([]domain.SurfSpot, string, error) {
	return loadCollection(ctx, uc, uc.spotsCollection())
}

// RefreshCollections принудительно перечитывает обе коллекции с бэкенда и обновляет
// кеш и снапшоты. Возвращает количество зон и спотов.
func (uc *CatalogUseCase) RefreshCollections(ctx context.Context) (int, int, error) {
	zones, err := uc.api.ListSurfZones(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("refresh surf zones: %w", err)
	}
	if zones == nil {
		zones = []domain.SurfZone{}
	}
	storeCollection(ctx, uc, uc.zonesCollection(), zones)

	spots, err := uc.api.ListSurfSpots(ctx)
	if err != nil {
		return len(zones), 0, fmt.Errorf("refresh surf spots: %w", err)
	}
	if spots == nil {
		spots = []domain.SurfSpot{}
	}
	storeCollection(ctx, uc, uc.spotsCollection(), spots)

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.Delete(ctx, repository.StatsKey); err != nil {
			uc.logger.Warn("Failed to drop cached stats", zap.Error(err))
		}
	}

	uc.logger.Info("Catalog collections refreshed",
		zap.Int("surf_zones", len(zones)),
		zap.Int("surf_spots", len(spots)))
	return len(zones), len(spots), nil
}

// FilterSurfZones применяет фильтр к полной коллекции зон в памяти
func (uc *CatalogUseCase) FilterSurfZones(ctx context.Context, sel filter.Selection) ([]domain.SurfZone, string, error) {
	zones, source, err := uc.LoadSurfZones(ctx)
	if err != nil {
		return nil, "", err
	}
	return filter.Zones(zones, sel, uc.catalog), source, nil
}

// FilterSurfSpots применяет фильтр к полной коллекции спотов в памяти
func (uc *CatalogUseCase) FilterSurfSpots(ctx context.Context, sel filter.Selection) ([]domain.SurfSpot, string, error) {
	spots, source, err := uc.LoadSurfSpots(ctx)
	if err != nil {
		return nil, "", err
	}
	return filter.Spots(spots, sel, uc.catalog), source, nil
}

// SearchSurfZones строит query по выбору и запрашивает lite-проекцию зон.
// bestMonths бэкенду не передаётся; он применяется здесь и только когда совпадает
// с выбранным месяцем.
func (uc *CatalogUseCase) SearchSurfZones(ctx context.Context, sel filter.Selection) ([]domain.SurfZone, error) {
	rawQuery := query.SurfZones(sel, uc.catalog).Encode()

	zones, err := searchLite(ctx, uc, collection[domain.SurfZone]{
		key: repository.SurfZonesLiteKey(rawQuery),
		fetch: func(ctx context.Context) ([]domain.SurfZone, error) {
			return uc.api.ListSurfZonesLite(ctx, rawQuery)
		},
	}.withCache(uc.cacheRepo, repository.CacheRepository.GetSurfZones, repository.CacheRepository.SetSurfZones))
	if err != nil {
		return nil, err
	}

	month := sel.Get(filter.Month)
	if best := sel.Get(filter.BestMonths); best != "" && best == month {
		zones = filter.Zones(zones, filter.Selection{filter.BestMonths: best}, uc.catalog)
	}
	return zones, nil
}

// SearchSurfSpots строит query по выбору и запрашивает lite-проекцию спотов
func (uc *CatalogUseCase) SearchSurfSpots(ctx context.Context, sel filter.Selection) ([]domain.SurfSpot, error) {
	rawQuery := query.SurfSpots(sel, uc.catalog).Encode()

	return searchLite(ctx, uc, collection[domain.SurfSpot]{
		key: repository.SurfSpotsLiteKey(rawQuery),
		fetch: func(ctx context.Context) ([]domain.SurfSpot, error) {
			return uc.api.ListSurfSpotsLite(ctx, rawQuery)
		},
	}.withCache(uc.cacheRepo, repository.CacheRepository.GetSurfSpots, repository.CacheRepository.SetSurfSpots))
}

// searchLite - lite-запрос к бэкенду с коротким кешем по закодированному query.
// Снапшотов у lite-ответов нет.
func searchLite[T any](ctx context.Context, uc *CatalogUseCase, c collection[T]) ([]T, error) {
	if c.getCache != nil {
		cached, err := c.getCache(ctx, c.key)
		if err != nil {
			uc.logger.Warn("Failed to get lite results from cache", zap.String("key", c.key), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	items, err := c.fetch(ctx)
	if err != nil {
		return nil, backendError(err)
	}
	if items == nil {
		items = []T{}
	}

	if c.setCache != nil && uc.cfg.LiteTTL > 0 {
		if err := c.setCache(ctx, c.key, items, uc.cfg.LiteTTL); err != nil {
			uc.logger.Warn("Failed to cache lite results", zap.String("key", c.key), zap.Error(err))
		}
	}
	return items, nil
}

// MonthBestDestinations возвращает зоны, у которых month входит в best_months.
// Пустой month означает текущий месяц.
func (uc *CatalogUseCase) MonthBestDestinations(ctx context.Context, month string, now time.Time) ([]domain.SurfZone, string, error) {
	if month == "" {
		month = now.Month().String()
	}
	return uc.FilterSurfZones(ctx, filter.Selection{filter.BestMonths: month})
}

// Countries возвращает отсортированный список стран, в которых есть зоны
func (uc *CatalogUseCase) Countries(ctx context.Context) ([]string, error) {
	zones, _, err := uc.LoadSurfZones(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	countries := make([]string, 0)
	for i := range zones {
		name := zones[i].CountryName()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		countries = append(countries, name)
	}
	sort.Strings(countries)
	return countries, nil
}

// Options возвращает списки значений всех фасетов
func (uc *CatalogUseCase) Options() dto.OptionsResponse {
	return catalog.AllOptions()
}

// SurfZone возвращает детальную запись зоны
func (uc *CatalogUseCase) SurfZone(ctx context.Context, id string) (*domain.SurfZone, error) {
	zone, err := uc.api.GetSurfZone(ctx, id)
	if err != nil {
		uc.logger.Debug("Failed to get surf zone", zap.String("id", id), zap.Error(err))
		return nil, backendError(err)
	}
	return zone, nil
}

// SurfSpot возвращает детальную запись спота
func (uc *CatalogUseCase) SurfSpot(ctx context.Context, id string) (*domain.SurfSpot, error) {
	spot, err := uc.api.GetSurfSpot(ctx, id)
	if err != nil {
		uc.logger.Debug("Failed to get surf spot", zap.String("id", id), zap.Error(err))
		return nil, backendError(err)
	}
	return spot, nil
}
