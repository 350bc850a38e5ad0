// Package filter - in-memory движок предикатов для зон и спотов. Selection
// хранит выбранные на странице значения фасетов, Zones и Spots возвращают
// записи, прошедшие все активные фасеты.
package filter

// Facet - независимо выбираемое измерение фильтра
type Facet string

// Фасеты зон
const (
	Month             Facet = "month"
	BestMonths        Facet = "bestMonths"
	Country           Facet = "country"
	TravelerType      Facet = "travelerType"
	Safety            Facet = "safety"
	Comfort           Facet = "comfort"
	Cost              Facet = "cost"
	MainWaveDirection Facet = "mainWaveDirection"
	SurfLevel         Facet = "surfLevel"
	WaterTemp         Facet = "waterTemp"
	SurfRating        Facet = "surfRating"
	SwellSize         Facet = "swellSize"
	CrowdFactor       Facet = "crowdFactor"
	SunnyDays         Facet = "sunnyDays"
	RainyDays         Facet = "rainyDays"
)

// Фасеты спотов. SurfLevel общий с зонами.
const (
	SurfSpot           Facet = "surfSpot"
	SurfZone           Facet = "surfZone"
	BreakType          Facet = "breakType"
	WaveDirection      Facet = "waveDirection"
	BestWindDirection  Facet = "bestWindDirection"
	BestSwellDirection Facet = "bestSwellDirection"
	BestTide           Facet = "bestTide"
	BestMonth          Facet = "bestMonth"
	BestSwellSize      Facet = "bestSwellSize"
)

// ZoneFacets - все фасеты, которые понимает Zones
var ZoneFacets = []Facet{
	Month, BestMonths, Country, TravelerType, Safety, Comfort, Cost, MainWaveDirection,
	SurfLevel, WaterTemp, SurfRating, SwellSize, CrowdFactor, SunnyDays, RainyDays,
}

// SpotFacets - все фасеты, которые понимает Spots
var SpotFacets = []Facet{
	SurfSpot, SurfZone, BreakType, WaveDirection, BestWindDirection, BestSwellDirection,
	SurfLevel, BestTide, BestMonth, BestSwellSize,
}

// MonthScoped - фасеты зон, проверяемые по условиям месяца
var MonthScoped = []Facet{SurfLevel, WaterTemp, SurfRating, SwellSize, CrowdFactor, SunnyDays, RainyDays}

// IsMonthScoped проверяет, что f считается по условиям зоны
func IsMonthScoped(f Facet) bool {
	return contains(MonthScoped, f)
}

// IsZoneFacet проверяет, что f из словаря зон
func IsZoneFacet(f Facet) bool {
	return contains(ZoneFacets, f)
}

// IsSpotFacet проверяет, что f из словаря спотов
func IsSpotFacet(f Facet) bool {
	return contains(SpotFacets, f)
}

func contains(list []Facet, f Facet) bool {
	for _, item := range list {
		if item == f {
			return true
		}
	}
	return false
}

// Selection - выбранные значения фасетов. Отсутствующий ключ и пустое
// значение одинаково означают неактивный фасет.
type Selection map[Facet]string

// Get возвращает выбранное значение или ""
func (s Selection) Get(f Facet) string {
	if s == nil {
		return ""
	}
	return s[f]
}

// Active проверяет, что у f непустое значение
func (s Selection) Active(f Facet) bool {
	return s.Get(f) != ""
}

// Set заменяет значение f. Пустое значение удаляет фасет.
func (s Selection) Set(f Facet, value string) {
	if value == "" {
		delete(s, f)
		return
	}
	s[f] = value
}

// Clone возвращает независимую копию только с активными фасетами
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for f, v := range s {
		if v != "" {
			out[f] = v
		}
	}
	return out
}

// FromLookup собирает выборку из facets, читая значения через get
// (например, из query string)
func FromLookup(facets []Facet, get func(key string) string) Selection {
	sel := make(Selection)
	for _, f := range facets {
		sel.Set(f, get(string(f)))
	}
	return sel
}
