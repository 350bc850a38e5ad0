package filter

import (
	"strconv"

	"github.com/surfquest-catalog/internal/catalog"
	"github.com/surfquest-catalog/internal/domain"
)

type zonePredicate func(z *domain.SurfZone) bool

type conditionPredicate func(c *domain.MonthCondition) bool

type spotPredicate func(s *domain.SurfSpot) bool

// Zones возвращает зоны, прошедшие все активные фасеты sel, в исходном
// порядке. Входной слайс не меняется. nil-справочник означает catalog.Default().
func Zones(zones []domain.SurfZone, sel Selection, cat *catalog.Catalog) []domain.SurfZone {
	if cat == nil {
		cat = catalog.Default()
	}
	preds := zonePredicates(sel, cat)

	out := make([]domain.SurfZone, 0, len(zones))
	for i := range zones {
		if matchZone(&zones[i], preds) {
			out = append(out, zones[i])
		}
	}
	return out
}

// Spots возвращает споты, прошедшие все активные фасеты sel, в исходном порядке
func Spots(spots []domain.SurfSpot, sel Selection, cat *catalog.Catalog) []domain.SurfSpot {
	if cat == nil {
		cat = catalog.Default()
	}
	preds := spotPredicates(sel, cat)

	out := make([]domain.SurfSpot, 0, len(spots))
	for i := range spots {
		if matchSpot(&spots[i], preds) {
			out = append(out, spots[i])
		}
	}
	return out
}

func matchZone(z *domain.SurfZone, preds []zonePredicate) bool {
	for _, p := range preds {
		if !p(z) {
			return false
		}
	}
	return true
}

func matchSpot(s *domain.SurfSpot, preds []spotPredicate) bool {
	for _, p := range preds {
		if !p(s) {
			return false
		}
	}
	return true
}

func never[T any](*T) bool { return false }

func zonePredicates(sel Selection, cat *catalog.Catalog) []zonePredicate {
	var preds []zonePredicate

	if v := sel.Get(BestMonths); v != "" {
		preds = append(preds, func(z *domain.SurfZone) bool { return z.BestMonths.Contains(v) })
	}
	if v := sel.Get(Country); v != "" {
		preds = append(preds, func(z *domain.SurfZone) bool { return z.Country != nil && z.Country.Name == v })
	}
	if v := sel.Get(TravelerType); v != "" {
		preds = append(preds, func(z *domain.SurfZone) bool { return z.TravelerType.Contains(v) })
	}
	if v := sel.Get(Safety); v != "" {
		preds = append(preds, func(z *domain.SurfZone) bool { return z.Safety.Contains(v) })
	}
	if v := sel.Get(Comfort); v != "" {
		preds = append(preds, func(z *domain.SurfZone) bool { return z.Confort.Contains(v) })
	}
	if v := sel.Get(Cost); v != "" {
		preds = append(preds, func(z *domain.SurfZone) bool { return z.Cost.Contains(v) })
	}
	if v := sel.Get(MainWaveDirection); v != "" {
		preds = append(preds, func(z *domain.SurfZone) bool { return z.MainWaveDirection.Contains(v) })
	}

	month := sel.Get(Month)
	for _, f := range MonthScoped {
		v := sel.Get(f)
		if v == "" {
			continue
		}
		cond := conditionPredicateFor(f, v, cat)
		if cond == nil {
			preds = append(preds, never[domain.SurfZone])
			continue
		}
		preds = append(preds, inMonth(month, cond))
	}

	return preds
}

// inMonth истинно, если хотя бы одна запись условий относится к month
// (к любому месяцу при пустом month) и удовлетворяет cond
func inMonth(month string, cond conditionPredicate) zonePredicate {
	return func(z *domain.SurfZone) bool {
		for i := range z.Conditions {
			c := &z.Conditions[i]
			if month != "" && c.Month != month {
				continue
			}
			if cond(c) {
				return true
			}
		}
		return false
	}
}

// conditionPredicateFor возвращает nil для неразрешимого значения:
// такой фасет не пропускает ни одной зоны
func conditionPredicateFor(f Facet, v string, cat *catalog.Catalog) conditionPredicate {
	switch f {
	case SurfLevel:
		return func(c *domain.MonthCondition) bool { return c.SurfLevel.Contains(v) }
	case WaterTemp:
		r, ok := cat.WaterTemp(v)
		if !ok {
			return nil
		}
		return func(c *domain.MonthCondition) bool { return c.WaterTempC.InRange(r.Min, r.Max) }
	case SurfRating:
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		return func(c *domain.MonthCondition) bool {
			return c.WorldSurfRating.Valid && c.WorldSurfRating.Value == rating
		}
	case SwellSize:
		r, ok := cat.SwellSize(v)
		if !ok {
			return nil
		}
		return func(c *domain.MonthCondition) bool { return c.SwellSizeMeter.InRange(r.Min, r.Max) }
	case CrowdFactor:
		crowd, ok := cat.CrowdFactor(v)
		if !ok {
			return nil
		}
		return func(c *domain.MonthCondition) bool { return c.Crowd == crowd }
	case SunnyDays:
		r, ok := cat.SunnyDays(v)
		if !ok {
			return nil
		}
		return func(c *domain.MonthCondition) bool { return c.SunnyDays.InRange(r.Min, r.Max) }
	case RainyDays:
		r, ok := cat.RainyDays(v)
		if !ok {
			return nil
		}
		return func(c *domain.MonthCondition) bool { return c.RainDays.InRange(r.Min, r.Max) }
	}
	return nil
}

func spotPredicates(sel Selection, cat *catalog.Catalog) []spotPredicate {
	var preds []spotPredicate

	if v := sel.Get(SurfSpot); v != "" {
		preds = append(preds, func(s *domain.SurfSpot) bool { return s.Slug == v || s.Name == v })
	}
	if v := sel.Get(SurfZone); v != "" {
		preds = append(preds, func(s *domain.SurfSpot) bool {
			return s.SurfZone != nil && (s.SurfZone.Slug == v || s.SurfZone.Name == v)
		})
	}
	if v := sel.Get(BreakType); v != "" {
		preds = append(preds, func(s *domain.SurfSpot) bool { return s.BreakType == v })
	}
	if v := sel.Get(WaveDirection); v != "" {
		preds = append(preds, func(s *domain.SurfSpot) bool { return s.WaveDirection == v })
	}
	if v := sel.Get(BestWindDirection); v != "" {
		preds = append(preds, func(s *domain.SurfSpot) bool { return s.BestWindDirection == v })
	}
	if v := sel.Get(BestSwellDirection); v != "" {
		preds = append(preds, func(s *domain.SurfSpot) bool { return s.BestSwellDirection == v })
	}
	if v := sel.Get(SurfLevel); v != "" {
		preds = append(preds, func(s *domain.SurfSpot) bool { return s.SurfLevel.Contains(v) })
	}
	if v := sel.Get(BestTide); v != "" {
		preds = append(preds, func(s *domain.SurfSpot) bool { return s.BestTide.Contains(v) })
	}
	if v := sel.Get(BestMonth); v != "" {
		preds = append(preds, func(s *domain.SurfSpot) bool { return s.BestMonths.Contains(v) })
	}
	if v := sel.Get(BestSwellSize); v != "" {
		r, ok := cat.SwellSize(v)
		if !ok {
			preds = append(preds, never[domain.SurfSpot])
		} else {
			preds = append(preds, func(s *domain.SurfSpot) bool {
				return s.BestSwellSizeMeter.InRange(r.Min, r.Max)
			})
		}
	}

	return preds
}
