package catalog

// Метки в порядке отображения
var (
	Months = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}

	SurfLevels         = []string{"Beginner", "Intermediate", "Advanced", "Pro"}
	TravelerTypes      = []string{"Solo", "Couple", "Family", "Group"}
	SafetyLevels       = []string{"Low", "Moderate", "High"}
	ComfortLevels      = []string{"Simple", "Comfortable", "Premium"}
	MainWaveDirections = []string{"Left", "Right", "Left and right"}
	CostLevels         = []string{"Cheap", "Moderate", "Expensive"}
	WaterTemps         = []string{"Freezing", "Cold", "Cool", "Temperate", "Warm", "Hot"}
	SurfRatings        = []int{1, 2, 3, 4, 5}
	SwellSizes         = []string{"Under 1m", "1m - 1.5m", "1.5m - 2m", "2m - 3m", "Over 3m"}
	CrowdFactors       = []string{"Few people", "Moderate", "Crowded", "Packed"}
	SunnyDays          = []string{"min 5", "min 10", "min 15", "min 20", "min 25"}
	RainyDays          = []string{"max 5", "max 10", "max 15", "max 20", "max 25"}

	BreakTypes      = []string{"Beach break", "Reef break", "Point break", "River-mouth", "Slab"}
	WaveDirections  = []string{"Left", "Right", "Left and right"}
	WindDirections  = WaveDirections
	SwellDirections = WaveDirections
	BestTides       = []string{"Low", "Mid", "High"}
)

// ZoneOptions - значения выпадающих списков страниц зон
type ZoneOptions struct {
	Months            []string `json:"months"`
	SurfLevel         []string `json:"surf_level"`
	TravelerType      []string `json:"traveler_type"`
	Safety            []string `json:"safety"`
	Comfort           []string `json:"comfort"`
	MainWaveDirection []string `json:"main_wave_direction"`
	Cost              []string `json:"cost"`
	WaterTemp         []string `json:"water_temp"`
	SurfRating        []int    `json:"surf_rating"`
	SwellSize         []string `json:"swell_size"`
	CrowdFactor       []string `json:"crowd_factor"`
	SunnyDays         []string `json:"sunny_days"`
	RainyDays         []string `json:"rainy_days"`
}

// SpotOptions - значения выпадающих списков страниц спотов
type SpotOptions struct {
	Months             []string `json:"months"`
	BreakType          []string `json:"break_type"`
	WaveDirection      []string `json:"wave_direction"`
	BestWindDirection  []string `json:"best_wind_direction"`
	BestSwellDirection []string `json:"best_swell_direction"`
	BestSwellSize      []string `json:"best_swell_size"`
	SurfLevel          []string `json:"surf_level"`
	BestTide           []string `json:"best_tide"`
}

// Options - словари зон и спотов
type Options struct {
	SurfZones ZoneOptions `json:"surf_zones"`
	SurfSpots SpotOptions `json:"surf_spots"`
}

// AllOptions возвращает копии всех списков меток
func AllOptions() Options {
	return Options{
		SurfZones: ZoneOptions{
			Months:            clone(Months),
			SurfLevel:         clone(SurfLevels),
			TravelerType:      clone(TravelerTypes),
			Safety:            clone(SafetyLevels),
			Comfort:           clone(ComfortLevels),
			MainWaveDirection: clone(MainWaveDirections),
			Cost:              clone(CostLevels),
			WaterTemp:         clone(WaterTemps),
			SurfRating:        append([]int(nil), SurfRatings...),
			SwellSize:         clone(SwellSizes),
			CrowdFactor:       clone(CrowdFactors),
			SunnyDays:         clone(SunnyDays),
			RainyDays:         clone(RainyDays),
		},
		SurfSpots: SpotOptions{
			Months:             clone(Months),
			BreakType:          clone(BreakTypes),
			WaveDirection:      clone(WaveDirections),
			BestWindDirection:  clone(WindDirections),
			BestSwellDirection: clone(SwellDirections),
			BestSwellSize:      clone(SwellSizes),
			SurfLevel:          clone(SurfLevels),
			BestTide:           clone(BestTides),
		},
	}
}

// IsMonth проверяет, что name - название месяца
func IsMonth(name string) bool {
	for _, m := range Months {
		if m == name {
			return true
		}
	}
	return false
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
