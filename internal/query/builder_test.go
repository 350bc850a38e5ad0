package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfquest-catalog/internal/filter"
)

func TestSurfZones(t *testing.T) {
	tests := []struct {
		name        string
		sel         filter.Selection
		expected    string
		description string
	}{
		{
			name:        "empty selection",
			sel:         filter.Selection{},
			expected:    "",
			description: "No active facet yields no parameters",
		},
		{
			name: "scalar facets in fixed order",
			sel: filter.Selection{
				filter.MainWaveDirection: "Left",
				filter.Cost:              "Cheap",
				filter.Comfort:           "Simple",
				filter.Safety:            "High",
				filter.TravelerType:      "Solo",
				filter.Country:           "france",
			},
			expected:    "country_slug=france&traveler_type=Solo&safety=High&confort=Simple&cost=Cheap&main_wave_direction=Left",
			description: "Comfort maps onto the backend's confort parameter",
		},
		{
			name: "month scoped facets without month",
			sel: filter.Selection{
				filter.SurfLevel:   "Beginner",
				filter.WaterTemp:   "Cold",
				filter.SurfRating:  "3",
				filter.CrowdFactor: "Packed",
			},
			expected:    "",
			description: "Seasonal parameters require an explicit month",
		},
		{
			name: "month scoped facets with month",
			sel: filter.Selection{
				filter.Month:       "July",
				filter.SurfLevel:   "Beginner",
				filter.WaterTemp:   "Cold",
				filter.SwellSize:   "1m - 1.5m",
				filter.SunnyDays:   "min 20",
				filter.RainyDays:   "max 5",
				filter.SurfRating:  "3",
				filter.CrowdFactor: "Packed",
			},
			expected: "month=July&surf_level=Beginner&water_temp_c_min=10&water_temp_c_max=15" +
				"&swell_size_meter_min=1.1&swell_size_meter_max=1.5&sunny_days_min=20&sunny_days_max=31" +
				"&rain_days_min=0&rain_days_max=5&surf_rating_min=3&crowd=Very+High",
			description: "Buckets expand to min/max pairs, crowd maps to the backend value",
		},
		{
			name: "unknown bucket is omitted",
			sel: filter.Selection{
				filter.Month:       "July",
				filter.WaterTemp:   "Unknown",
				filter.CrowdFactor: "Deserted",
			},
			expected:    "month=July",
			description: "Unresolvable buckets add no constraint",
		},
		{
			name: "scalars then month",
			sel: filter.Selection{
				filter.Country: "portugal",
				filter.Month:   "March",
				filter.Cost:    "Moderate",
			},
			expected:    "country_slug=portugal&cost=Moderate&month=March",
			description: "Month block follows the scalar block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SurfZones(tt.sel, nil)
			assert.Equal(t, tt.expected, got.Encode(), tt.description)
		})
	}
}

func TestSurfZones_UnknownWaterTempHasNoRangeKeys(t *testing.T) {
	p := SurfZones(filter.Selection{filter.Month: "July", filter.WaterTemp: "Unknown"}, nil)

	_, hasMin := p.Get("water_temp_c_min")
	_, hasMax := p.Get("water_temp_c_max")
	assert.False(t, hasMin)
	assert.False(t, hasMax)
}

func TestSurfZones_SurfRatingIsMinimum(t *testing.T) {
	p := SurfZones(filter.Selection{filter.Month: "June", filter.SurfRating: "3"}, nil)

	v, ok := p.Get("surf_rating_min")
	require.True(t, ok)
	assert.Equal(t, "3", v)
	_, ok = p.Get("surf_rating")
	assert.False(t, ok)
}

func TestSurfZones_StableOrder(t *testing.T) {
	sel := filter.Selection{
		filter.Month:     "July",
		filter.Country:   "spain",
		filter.SwellSize: "Over 3m",
		filter.SurfLevel: "Pro",
	}

	first := SurfZones(sel, nil)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first.Keys(), SurfZones(sel, nil).Keys())
	}
	assert.Equal(t, []string{"country_slug", "month", "surf_level", "swell_size_meter_min", "swell_size_meter_max"}, first.Keys())
	assert.Equal(t, "30", first.Values().Get("swell_size_meter_max"))
}

func TestSurfSpots(t *testing.T) {
	tests := []struct {
		name     string
		sel      filter.Selection
		expected string
	}{
		{
			name:     "empty selection",
			sel:      filter.Selection{},
			expected: "",
		},
		{
			name: "every facet",
			sel: filter.Selection{
				filter.BestSwellSize:      "Under 1m",
				filter.BestSwellDirection: "Right",
				filter.BestWindDirection:  "Left",
				filter.WaveDirection:      "Left and right",
				filter.BreakType:          "Reef break",
				filter.BestTide:           "Low",
				filter.SurfLevel:          "Advanced",
				filter.BestMonth:          "October",
				filter.SurfZone:           "landes",
			},
			expected: "surfzone_slug=landes&best_month=October&surf_level=Advanced&best_tide=Low" +
				"&break_type=Reef+break&wave_direction=Left+and+right&best_wind_direction=Left" +
				"&best_swell_direction=Right&best_swell_size_meter_min=0&best_swell_size_meter_max=1",
		},
		{
			name:     "unknown swell bucket",
			sel:      filter.Selection{filter.BestSwellSize: "Huge", filter.BreakType: "Slab"},
			expected: "break_type=Slab",
		},
		{
			name:     "zone facets are ignored",
			sel:      filter.Selection{filter.Country: "france", filter.Month: "July"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SurfSpots(tt.sel, nil).Encode())
		})
	}
}

func TestParams(t *testing.T) {
	var p Params
	p.Add("b", "2")
	p.Add("a", "x y")
	p.AddFloat("f", 1.10)
	p.AddFloat("z", 0)

	assert.Equal(t, "b=2&a=x+y&f=1.1&z=0", p.Encode())
	assert.Equal(t, "x y", p.Values().Get("a"))
	assert.Equal(t, []string{"b", "a", "f", "z"}, p.Keys())

	_, ok := p.Get("missing")
	assert.False(t, ok)
}
