package domain

import (
	"bytes"
	"encoding/json"
)

// Country - страна, к которой относится surf zone
type Country struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// UnmarshalJSON принимает вложенный объект или плоское имя страны (lite-проекция)
func (c *Country) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = Country{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err == nil {
			c.Name = name
		}
	case '{':
		var v struct {
			ID   Text `json:"id"`
			Name Text `json:"name"`
			Code Text `json:"code"`
			Slug Text `json:"slug"`
		}
		if err := json.Unmarshal(data, &v); err == nil {
			*c = Country{ID: string(v.ID), Name: string(v.Name), Code: string(v.Code), Slug: string(v.Slug)}
		}
	}
	return nil
}

// Image - изображение зоны или спота
type Image struct {
	ID          string `json:"id,omitempty"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

func (i *Image) UnmarshalJSON(data []byte) error {
	var v struct {
		ID          Text `json:"id"`
		Image       Text `json:"image"`
		Description Text `json:"description"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = Image{ID: string(v.ID), Image: string(v.Image), Description: string(v.Description)}
	return nil
}

// MonthCondition - сезонные условия зоны за один календарный месяц.
// На одну зону приходится не больше одной записи на месяц.
type MonthCondition struct {
	ID               string    `json:"id,omitempty"`
	Month            string    `json:"month"`
	SurfLevel        StringSet `json:"surf_level"`
	WaterTempC       Number    `json:"water_temp_c"`
	WaterTempF       Number    `json:"water_temp_f"`
	SwellSizeFt      Number    `json:"swell_size_ft"`
	SwellSizeMeter   Number    `json:"swell_size_meter"`
	SwellConsistency Number    `json:"swell_consistency"`
	SwellDirection   string    `json:"swell_direction,omitempty"`
	Crowd            string    `json:"crowd"`
	LocalSurfRating  Number    `json:"local_surf_rating"`
	WorldSurfRating  Number    `json:"world_surf_rating"`
	MinAirTempC      Number    `json:"min_air_temp_c"`
	MaxAirTempC      Number    `json:"max_air_temp_c"`
	RainQuantity     Number    `json:"rain_quantity"`
	RainDays         Number    `json:"rain_days"`
	SunnyDays        Number    `json:"sunny_days"`
	WindForce        Number    `json:"wind_force"`
	WindDirection    string    `json:"wind_direction,omitempty"`
	WindConsistency  Number    `json:"wind_consistency"`
}

// UnmarshalJSON терпит поля не того типа: текстовое поле с числом или
// объектом не роняет всю запись
func (m *MonthCondition) UnmarshalJSON(data []byte) error {
	type plain MonthCondition
	aux := struct {
		*plain
		ID             Text `json:"id"`
		Month          Text `json:"month"`
		SwellDirection Text `json:"swell_direction"`
		Crowd          Text `json:"crowd"`
		WindDirection  Text `json:"wind_direction"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	m.ID = string(aux.ID)
	m.Month = string(aux.Month)
	m.SwellDirection = string(aux.SwellDirection)
	m.Crowd = string(aux.Crowd)
	m.WindDirection = string(aux.WindDirection)
	return nil
}

// Conditions - помесячные условия зоны. Не-массив декодируется в nil,
// битые элементы пропускаются.
type Conditions []MonthCondition

func (c *Conditions) UnmarshalJSON(data []byte) error {
	*c = decodeItems[MonthCondition](data)
	return nil
}

// SurfZone - серф-направление (полная или lite-проекция)
type SurfZone struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Slug              string     `json:"slug"`
	Country           *Country   `json:"country,omitempty"`
	Latitude          Number     `json:"latitude"`
	Longitude         Number     `json:"longitude"`
	NearestCity       string     `json:"nearest_city,omitempty"`
	NearestAirport    string     `json:"nearest_airport,omitempty"`
	TravelerType      StringSet  `json:"traveler_type"`
	Safety            StringSet  `json:"safety"`
	Confort           StringSet  `json:"confort"`
	Cost              StringSet  `json:"cost"`
	MainWaveDirection StringSet  `json:"main_wave_direction"`
	BestMonths        StringSet  `json:"best_months"`
	HealthHazards     StringSet  `json:"health_hazards,omitempty"`
	SurfHazards       StringSet  `json:"surf_hazards,omitempty"`
	Language          string     `json:"language,omitempty"`
	Currency          string     `json:"currency,omitempty"`
	Description       string     `json:"description,omitempty"`
	ZoneImages        []Image    `json:"zone_images,omitempty"`
	Conditions        Conditions `json:"conditions,omitempty"`
}

// UnmarshalJSON декодирует зону, приводя текстовые поля через Text.
// Один кривой скаляр не должен выбрасывать зону из списка.
func (z *SurfZone) UnmarshalJSON(data []byte) error {
	type plain SurfZone
	aux := struct {
		*plain
		ID             Text            `json:"id"`
		Name           Text            `json:"name"`
		Slug           Text            `json:"slug"`
		NearestCity    Text            `json:"nearest_city"`
		NearestAirport Text            `json:"nearest_airport"`
		Language       Text            `json:"language"`
		Currency       Text            `json:"currency"`
		Description    Text            `json:"description"`
		ZoneImages     json.RawMessage `json:"zone_images"`
	}{plain: (*plain)(z)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	z.ID = string(aux.ID)
	z.Name = string(aux.Name)
	z.Slug = string(aux.Slug)
	z.NearestCity = string(aux.NearestCity)
	z.NearestAirport = string(aux.NearestAirport)
	z.Language = string(aux.Language)
	z.Currency = string(aux.Currency)
	z.Description = string(aux.Description)
	z.ZoneImages = decodeItems[Image](aux.ZoneImages)
	return nil
}

// CountryName возвращает имя страны или пустую строку
func (z *SurfZone) CountryName() string {
	if z.Country == nil {
		return ""
	}
	return z.Country.Name
}
