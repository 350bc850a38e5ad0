package query

import (
	"github.com/surfquest-catalog/internal/catalog"
	"github.com/surfquest-catalog/internal/filter"
)

// SurfZones собирает параметры surfzones-lite для sel.
//
// Фасеты месяца уходят только при выбранном месяце. Неразрешимые корзины
// пропускаются, рейтинг отправляется как нижняя граница. В этом поведение
// отличается от filter.Zones.
func SurfZones(sel filter.Selection, cat *catalog.Catalog) Params {
	if cat == nil {
		cat = catalog.Default()
	}
	var p Params

	addIf(&p, "country_slug", sel.Get(filter.Country))
	addIf(&p, "traveler_type", sel.Get(filter.TravelerType))
	addIf(&p, "safety", sel.Get(filter.Safety))
	addIf(&p, "confort", sel.Get(filter.Comfort))
	addIf(&p, "cost", sel.Get(filter.Cost))
	addIf(&p, "main_wave_direction", sel.Get(filter.MainWaveDirection))

	month := sel.Get(filter.Month)
	if month == "" {
		return p
	}

	p.Add("month", month)
	addIf(&p, "surf_level", sel.Get(filter.SurfLevel))
	addRange(&p, "water_temp_c", sel.Get(filter.WaterTemp), cat.WaterTemp)
	addRange(&p, "swell_size_meter", sel.Get(filter.SwellSize), cat.SwellSize)
	addRange(&p, "sunny_days", sel.Get(filter.SunnyDays), cat.SunnyDays)
	addRange(&p, "rain_days", sel.Get(filter.RainyDays), cat.RainyDays)
	addIf(&p, "surf_rating_min", sel.Get(filter.SurfRating))
	if v := sel.Get(filter.CrowdFactor); v != "" {
		if crowd, ok := cat.CrowdFactor(v); ok {
			p.Add("crowd", crowd)
		}
	}

	return p
}

// SurfSpots собирает параметры surfspots-lite для sel
func SurfSpots(sel filter.Selection, cat *catalog.Catalog) Params {
	if cat == nil {
		cat = catalog.Default()
	}
	var p Params

	addIf(&p, "surfzone_slug", sel.Get(filter.SurfZone))
	addIf(&p, "best_month", sel.Get(filter.BestMonth))
	addIf(&p, "surf_level", sel.Get(filter.SurfLevel))
	addIf(&p, "best_tide", sel.Get(filter.BestTide))
	addIf(&p, "break_type", sel.Get(filter.BreakType))
	addIf(&p, "wave_direction", sel.Get(filter.WaveDirection))
	addIf(&p, "best_wind_direction", sel.Get(filter.BestWindDirection))
	addIf(&p, "best_swell_direction", sel.Get(filter.BestSwellDirection))
	addRange(&p, "best_swell_size_meter", sel.Get(filter.BestSwellSize), cat.SwellSize)

	return p
}

func addIf(p *Params, key, value string) {
	if value != "" {
		p.Add(key, value)
	}
}

func addRange(p *Params, field, label string, lookup func(string) (catalog.Range, bool)) {
	if label == "" {
		return
	}
	r, ok := lookup(label)
	if !ok {
		return
	}
	p.AddFloat(field+"_min", r.Min)
	p.AddFloat(field+"_max", r.Max)
}
