// Package catalog - фиксированный словарь фильтров каталога: метки каждого
// фасета и числовые диапазоны или значения бэкенда, которые стоят за
// метками-корзинами. Данные статические.
package catalog

// Range - числовой интервал, границы включительно
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains проверяет, что v лежит в [Min, Max]
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Catalog - общий для всех страниц справочник диапазонов, только для чтения
type Catalog struct {
	waterTemp   map[string]Range
	swellSize   map[string]Range
	sunnyDays   map[string]Range
	rainyDays   map[string]Range
	crowdFactor map[string]string
}

var defaultCatalog = &Catalog{
	waterTemp: map[string]Range{
		"Freezing":  {Min: 0, Max: 9},
		"Cold":      {Min: 10, Max: 15},
		"Cool":      {Min: 16, Max: 19},
		"Temperate": {Min: 20, Max: 23},
		"Warm":      {Min: 24, Max: 27},
		"Hot":       {Min: 28, Max: 30},
	},
	swellSize: map[string]Range{
		"Under 1m":  {Min: 0, Max: 1},
		"1m - 1.5m": {Min: 1.1, Max: 1.5},
		"1.5m - 2m": {Min: 1.6, Max: 2},
		"2m - 3m":   {Min: 2.1, Max: 3},
		"Over 3m":   {Min: 3.1, Max: 30}, // верхняя граница 30м
	},
	sunnyDays: map[string]Range{
		"min 5":  {Min: 5, Max: 31},
		"min 10": {Min: 10, Max: 31},
		"min 15": {Min: 15, Max: 31},
		"min 20": {Min: 20, Max: 31},
		"min 25": {Min: 25, Max: 31},
	},
	rainyDays: map[string]Range{
		"max 5":  {Min: 0, Max: 5},
		"max 10": {Min: 0, Max: 10},
		"max 15": {Min: 0, Max: 15},
		"max 20": {Min: 0, Max: 20},
		"max 25": {Min: 0, Max: 25},
	},
	crowdFactor: map[string]string{
		"Few people": "Low",
		"Moderate":   "Medium",
		"Crowded":    "High",
		"Packed":     "Very High",
	},
}

// Default возвращает справочник процесса. Менять его нельзя.
func Default() *Catalog {
	return defaultCatalog
}

// New собирает справочник из явных таблиц (тесты, урезанный словарь).
// nil-таблица ведёт себя как пустая.
func New(waterTemp, swellSize, sunnyDays, rainyDays map[string]Range, crowdFactor map[string]string) *Catalog {
	return &Catalog{
		waterTemp:   waterTemp,
		swellSize:   swellSize,
		sunnyDays:   sunnyDays,
		rainyDays:   rainyDays,
		crowdFactor: crowdFactor,
	}
}

// WaterTemp resolves a water temperature bucket in °C.
func (c *Catalog) WaterTemp(label string) (Range, bool) {
	r, ok := c.waterTemp[label]
	return r, ok
}

// SwellSize - диапазон корзины размера свелла в метрах. Условия зон и
// best swell size спотов используют одни и те же корзины.
func (c *Catalog) SwellSize(label string) (Range, bool) {
	r, ok := c.swellSize[label]
	return r, ok
}

// SunnyDays - корзина солнечных дней вида "min N"
func (c *Catalog) SunnyDays(label string) (Range, bool) {
	r, ok := c.sunnyDays[label]
	return r, ok
}

// RainyDays - корзина дождливых дней вида "max N"
func (c *Catalog) RainyDays(label string) (Range, bool) {
	r, ok := c.rainyDays[label]
	return r, ok
}

// CrowdFactor переводит метку для пользователя в значение, которое хранит бэкенд
func (c *Catalog) CrowdFactor(label string) (string, bool) {
	v, ok := c.crowdFactor[label]
	return v, ok
}
