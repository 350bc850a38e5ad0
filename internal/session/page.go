// Package session - состояние фильтров одного просмотра страницы каталога:
// текущая выборка, последние удачные результаты и способ получить новые
// (in-memory движок или запрос к бэкенду с debounce).
package session

import (
	"time"

	"github.com/surfquest-catalog/internal/filter"
)

// Page - профиль страницы каталога
type Page string

const (
	PageHome             Page = "home"
	PageSurfZones        Page = "surfzones"
	PageSurfZonesExplore Page = "surfzones-explore"
	PageSurfSpots        Page = "surfspots"
	PageSurfSpotsExplore Page = "surfspots-explore"
)

// Entity - тип записей на странице
type Entity string

const (
	EntitySurfZones Entity = "surfzones"
	EntitySurfSpots Entity = "surfspots"
)

// Strategy - способ превращения выборки в результаты
type Strategy string

const (
	// InMemory синхронно фильтрует загруженную полную коллекцию
	InMemory Strategy = "in-memory"
	// Query обращается к lite-эндпоинту бэкенда после debounce
	Query Strategy = "query"
)

// Effect - подсказка прокрутки после изменения выборки
type Effect string

const (
	ScrollMonthFilters Effect = "month-filters"
	ScrollResults      Effect = "results"
)

// Profile - поведение одной страницы
type Profile struct {
	Page     Page
	Entity   Entity
	Strategy Strategy
	// SeedCurrentMonth выбирает текущий месяц (и best month) при создании
	// и при сбросе
	SeedCurrentMonth bool
}

var profiles = map[Page]Profile{
	PageHome:             {Page: PageHome, Entity: EntitySurfZones, Strategy: InMemory, SeedCurrentMonth: true},
	PageSurfZones:        {Page: PageSurfZones, Entity: EntitySurfZones, Strategy: Query},
	PageSurfZonesExplore: {Page: PageSurfZonesExplore, Entity: EntitySurfZones, Strategy: InMemory},
	PageSurfSpots:        {Page: PageSurfSpots, Entity: EntitySurfSpots, Strategy: Query},
	PageSurfSpotsExplore: {Page: PageSurfSpotsExplore, Entity: EntitySurfSpots, Strategy: InMemory},
}

// Pages - известные страницы
func Pages() []Page {
	return []Page{PageHome, PageSurfZones, PageSurfZonesExplore, PageSurfSpots, PageSurfSpotsExplore}
}

// ProfileFor возвращает профиль p
func ProfileFor(p Page) (Profile, bool) {
	prof, ok := profiles[p]
	return prof, ok
}

// Defaults возвращает начальную выборку страницы на момент now
func (p Profile) Defaults(now time.Time) filter.Selection {
	sel := filter.Selection{}
	if p.SeedCurrentMonth {
		month := now.Month().String()
		sel.Set(filter.Month, month)
		sel.Set(filter.BestMonths, month)
	}
	return sel
}

// Accepts проверяет, что key - фасет сущности страницы
func (p Profile) Accepts(key filter.Facet) bool {
	if p.Entity == EntitySurfSpots {
		return filter.IsSpotFacet(key)
	}
	return filter.IsZoneFacet(key)
}

// clearsSeasonalFacets - сбрасывает ли очистка месяца сезонные фасеты.
// Так ведут себя только backend-query страницы зон.
func (p Profile) clearsSeasonalFacets() bool {
	return p.Entity == EntitySurfZones && p.Strategy == Query
}
