package filter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfquest-catalog/internal/catalog"
	"github.com/surfquest-catalog/internal/domain"
)

func zone(slug, country string, conds ...domain.MonthCondition) domain.SurfZone {
	return domain.SurfZone{
		ID:         slug,
		Name:       slug,
		Slug:       slug,
		Country:    &domain.Country{Name: country},
		Conditions: conds,
	}
}

func cond(month string, fn func(c *domain.MonthCondition)) domain.MonthCondition {
	c := domain.MonthCondition{Month: month}
	if fn != nil {
		fn(&c)
	}
	return c
}

func slugs(zones []domain.SurfZone) []string {
	out := make([]string, 0, len(zones))
	for _, z := range zones {
		out = append(out, z.Slug)
	}
	return out
}

func spotSlugs(spots []domain.SurfSpot) []string {
	out := make([]string, 0, len(spots))
	for _, s := range spots {
		out = append(out, s.Slug)
	}
	return out
}

func sampleZones() []domain.SurfZone {
	a := zone("zone-a", "France", cond("July", func(c *domain.MonthCondition) {
		c.WaterTempC = domain.NewNumber(22)
		c.SurfLevel = domain.StringSet{"Intermediate"}
		c.WorldSurfRating = domain.NewNumber(4)
	}))
	a.TravelerType = domain.StringSet{"Solo", "Couple"}
	a.BestMonths = domain.StringSet{"July", "August"}

	b := zone("zone-b", "France", cond("July", func(c *domain.MonthCondition) {
		c.WaterTempC = domain.NewNumber(14)
		c.Crowd = "High"
	}))
	b.TravelerType = domain.StringSet{"Family"}

	c := zone("zone-c", "Spain", cond("July", func(c *domain.MonthCondition) {
		c.WaterTempC = domain.NewNumber(22)
	}))
	c.BestMonths = domain.StringSet{"July"}

	return []domain.SurfZone{a, b, c}
}

func TestZones_EmptySelectionIsIdentity(t *testing.T) {
	zones := sampleZones()

	assert.Equal(t, zones, Zones(zones, nil, nil))
	assert.Equal(t, zones, Zones(zones, Selection{}, catalog.Default()))
	assert.Equal(t, zones, Zones(zones, Selection{Country: "", WaterTemp: ""}, nil))
}

func TestZones_CountryMonthWaterTempScenario(t *testing.T) {
	sel := Selection{Country: "France", Month: "July", WaterTemp: "Temperate"}

	got := Zones(sampleZones(), sel, nil)

	assert.Equal(t, []string{"zone-a"}, slugs(got))
}

func TestZones_Idempotent(t *testing.T) {
	sel := Selection{Country: "France", TravelerType: "Solo"}
	once := Zones(sampleZones(), sel, nil)
	twice := Zones(once, sel, nil)

	assert.Equal(t, once, twice)
}

func TestZones_DoesNotMutateInput(t *testing.T) {
	zones := sampleZones()
	before := slugs(zones)

	got := Zones(zones, Selection{Country: "Spain"}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, before, slugs(zones))
}

func TestZones_MonthScoping(t *testing.T) {
	z := zone("scoped", "Portugal",
		cond("January", func(c *domain.MonthCondition) { c.SurfLevel = domain.StringSet{"Beginner"} }),
		cond("July", func(c *domain.MonthCondition) { c.SurfLevel = domain.StringSet{"Pro"} }),
	)
	zones := []domain.SurfZone{z}

	tests := []struct {
		name        string
		sel         Selection
		expected    int
		description string
	}{
		{
			name:        "no month selected",
			sel:         Selection{SurfLevel: "Beginner"},
			expected:    1,
			description: "Any month qualifies when no month is selected",
		},
		{
			name:        "matching month",
			sel:         Selection{SurfLevel: "Beginner", Month: "January"},
			expected:    1,
			description: "January condition carries Beginner",
		},
		{
			name:        "other month",
			sel:         Selection{SurfLevel: "Beginner", Month: "July"},
			expected:    0,
			description: "July condition does not carry Beginner",
		},
		{
			name:        "month without conditions",
			sel:         Selection{SurfLevel: "Pro", Month: "March"},
			expected:    0,
			description: "No condition for March means no match",
		},
		{
			name:        "month alone is not a predicate",
			sel:         Selection{Month: "March"},
			expected:    1,
			description: "Month only scopes month facets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Zones(zones, tt.sel, nil)
			assert.Len(t, got, tt.expected, tt.description)
		})
	}
}

func TestZones_LookupMissFailsClosed(t *testing.T) {
	zones := sampleZones()

	for _, f := range []Facet{WaterTemp, SwellSize, CrowdFactor, SunnyDays, RainyDays} {
		t.Run(string(f), func(t *testing.T) {
			got := Zones(zones, Selection{f: "Unknown"}, nil)
			assert.Empty(t, got)
			assert.NotNil(t, got)
		})
	}
}

func TestZones_SurfRatingExactMatch(t *testing.T) {
	zones := sampleZones()

	assert.Empty(t, Zones(zones, Selection{SurfRating: "3"}, nil))
	assert.Equal(t, []string{"zone-a"}, slugs(Zones(zones, Selection{SurfRating: "4"}, nil)))
	assert.Empty(t, Zones(zones, Selection{SurfRating: "four"}, nil))
}

func TestZones_SwellSizeInclusiveBounds(t *testing.T) {
	tests := []struct {
		name     string
		swell    domain.Number
		expected bool
	}{
		{name: "upper bound", swell: domain.NewNumber(1.5), expected: true},
		{name: "lower bound", swell: domain.NewNumber(1.1), expected: true},
		{name: "just above", swell: domain.NewNumber(1.55), expected: false},
		{name: "between buckets", swell: domain.NewNumber(1.05), expected: false},
		{name: "missing value", swell: domain.Number{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := zone("swell", "Morocco", cond("October", func(c *domain.MonthCondition) {
				c.SwellSizeMeter = tt.swell
			}))
			got := Zones([]domain.SurfZone{z}, Selection{SwellSize: "1m - 1.5m"}, nil)
			assert.Equal(t, tt.expected, len(got) == 1)
		})
	}
}

func TestZones_CategoricalFacets(t *testing.T) {
	zones := sampleZones()

	tests := []struct {
		name     string
		sel      Selection
		expected []string
	}{
		{name: "traveler type set", sel: Selection{TravelerType: "Couple"}, expected: []string{"zone-a"}},
		{name: "best months", sel: Selection{BestMonths: "July"}, expected: []string{"zone-a", "zone-c"}},
		{name: "crowd factor label", sel: Selection{CrowdFactor: "Crowded"}, expected: []string{"zone-b"}},
		{name: "country exact", sel: Selection{Country: "france"}, expected: []string{}},
		{name: "unsatisfiable", sel: Selection{TravelerType: "Group"}, expected: []string{}},
		{name: "and across facets", sel: Selection{Country: "France", BestMonths: "July"}, expected: []string{"zone-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugs(Zones(zones, tt.sel, nil)))
		})
	}
}

func TestZones_MalformedRecordsDoNotMatch(t *testing.T) {
	raw := `[
		{"id":"1","slug":"broken","country":null,"traveler_type":42,"best_months":{"x":1},"conditions":"nope"},
		{"id":"2","slug":"scalar","country":"France","traveler_type":"Solo","best_months":["May"],
		 "conditions":[{"month":"May","water_temp_c":"21","surf_level":"Beginner","sunny_days":null}]}
	]`
	var zones []domain.SurfZone
	require.NoError(t, json.Unmarshal([]byte(raw), &zones))
	require.Len(t, zones, 2)

	tests := []struct {
		name     string
		sel      Selection
		expected []string
	}{
		{name: "country from plain string", sel: Selection{Country: "France"}, expected: []string{"scalar"}},
		{name: "scalar traveler type", sel: Selection{TravelerType: "Solo"}, expected: []string{"scalar"}},
		{name: "non array best months", sel: Selection{BestMonths: "May"}, expected: []string{"scalar"}},
		{name: "numeric string temperature", sel: Selection{WaterTemp: "Temperate"}, expected: []string{"scalar"}},
		{name: "scalar surf level", sel: Selection{SurfLevel: "Beginner", Month: "May"}, expected: []string{"scalar"}},
		{name: "null sunny days", sel: Selection{SunnyDays: "min 5"}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugs(Zones(zones, tt.sel, nil)))
		})
	}
}

func TestZones_CustomCatalog(t *testing.T) {
	cat := catalog.New(map[string]catalog.Range{"Chilly": {Min: 13, Max: 15}}, nil, nil, nil, nil)

	got := Zones(sampleZones(), Selection{WaterTemp: "Chilly"}, cat)
	assert.Equal(t, []string{"zone-b"}, slugs(got))

	assert.Empty(t, Zones(sampleZones(), Selection{WaterTemp: "Temperate"}, cat))
}

func sampleSpots() []domain.SurfSpot {
	return []domain.SurfSpot{
		{
			ID: "1", Name: "La Graviere", Slug: "la-graviere",
			SurfZone:           &domain.SurfZoneRef{Name: "Landes", Slug: "landes"},
			BreakType:          "Beach break",
			WaveDirection:      "Left and right",
			BestWindDirection:  "Left",
			BestSwellDirection: "Right",
			BestSwellSizeMeter: domain.NewNumber(2),
			BestTide:           domain.StringSet{"Mid", "High"},
			SurfLevel:          domain.StringSet{"Advanced", "Pro"},
			BestMonths:         domain.StringSet{"October", "November"},
		},
		{
			ID: "2", Name: "Mundaka", Slug: "mundaka",
			SurfZone:           &domain.SurfZoneRef{Slug: "basque-country"},
			BreakType:          "River-mouth",
			WaveDirection:      "Left",
			BestSwellSizeMeter: domain.NewNumber(1.5),
			BestTide:           domain.StringSet{"Low"},
			SurfLevel:          domain.StringSet{"Pro"},
			BestMonths:         domain.StringSet{"October"},
		},
		{
			ID: "3", Name: "Orphan", Slug: "orphan",
		},
	}
}

func TestSpots(t *testing.T) {
	spots := sampleSpots()

	tests := []struct {
		name     string
		sel      Selection
		expected []string
	}{
		{name: "empty selection", sel: Selection{}, expected: []string{"la-graviere", "mundaka", "orphan"}},
		{name: "surf spot by slug", sel: Selection{SurfSpot: "mundaka"}, expected: []string{"mundaka"}},
		{name: "surf spot by name", sel: Selection{SurfSpot: "La Graviere"}, expected: []string{"la-graviere"}},
		{name: "surf zone by slug", sel: Selection{SurfZone: "basque-country"}, expected: []string{"mundaka"}},
		{name: "surf zone by name", sel: Selection{SurfZone: "Landes"}, expected: []string{"la-graviere"}},
		{name: "break type", sel: Selection{BreakType: "River-mouth"}, expected: []string{"mundaka"}},
		{name: "wave direction exact", sel: Selection{WaveDirection: "Left"}, expected: []string{"mundaka"}},
		{name: "wind direction", sel: Selection{BestWindDirection: "Left"}, expected: []string{"la-graviere"}},
		{name: "swell direction", sel: Selection{BestSwellDirection: "Right"}, expected: []string{"la-graviere"}},
		{name: "surf level contains", sel: Selection{SurfLevel: "Pro"}, expected: []string{"la-graviere", "mundaka"}},
		{name: "tide contains", sel: Selection{BestTide: "Low"}, expected: []string{"mundaka"}},
		{name: "best month", sel: Selection{BestMonth: "November"}, expected: []string{"la-graviere"}},
		{name: "swell bucket upper bound", sel: Selection{BestSwellSize: "1m - 1.5m"}, expected: []string{"mundaka"}},
		{name: "swell bucket miss", sel: Selection{BestSwellSize: "Huge"}, expected: []string{}},
		{name: "no match", sel: Selection{BreakType: "Slab"}, expected: []string{}},
		{name: "and across facets", sel: Selection{SurfLevel: "Pro", BestMonth: "November"}, expected: []string{"la-graviere"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spots(spots, tt.sel, nil)
			assert.Equal(t, tt.expected, spotSlugs(got))
			assert.Equal(t, got, Spots(got, tt.sel, nil))
		})
	}
}

func TestSelection(t *testing.T) {
	sel := Selection{}
	sel.Set(Country, "France")
	sel.Set(Month, "")
	assert.True(t, sel.Active(Country))
	assert.False(t, sel.Active(Month))

	clone := sel.Clone()
	clone.Set(Country, "")
	assert.Equal(t, "France", sel.Get(Country))

	var nilSel Selection
	assert.Equal(t, "", nilSel.Get(Country))

	query := map[string]string{"country": "Spain", "waterTemp": "Warm", "bestTide": "Low"}
	parsed := FromLookup(ZoneFacets, func(k string) string { return query[k] })
	assert.Equal(t, Selection{Country: "Spain", WaterTemp: "Warm"}, parsed)

	assert.True(t, IsMonthScoped(WaterTemp))
	assert.False(t, IsMonthScoped(Country))
	assert.True(t, IsSpotFacet(BestTide))
	assert.False(t, IsZoneFacet(BestTide))
}
