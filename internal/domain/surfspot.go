package domain

import (
	"bytes"
	"encoding/json"
)

// SurfZoneRef - ссылка спота на его зону: вложенный объект (полный ответ) или slug (lite)
type SurfZoneRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

func (r *SurfZoneRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*r = SurfZoneRef{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var slug string
		if err := json.Unmarshal(data, &slug); err == nil {
			r.Slug = slug
		}
	case '{':
		var v struct {
			ID   Text `json:"id"`
			Name Text `json:"name"`
			Slug Text `json:"slug"`
		}
		if err := json.Unmarshal(data, &v); err == nil {
			*r = SurfZoneRef{ID: string(v.ID), Name: string(v.Name), Slug: string(v.Slug)}
		}
	}
	return nil
}

// SurfSpot - конкретный спот внутри зоны
type SurfSpot struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Slug               string       `json:"slug"`
	SurfZone           *SurfZoneRef `json:"surfzone,omitempty"`
	Latitude           Number       `json:"latitude"`
	Longitude          Number       `json:"longitude"`
	BreakType          string       `json:"break_type"`
	WaveDirection      string       `json:"wave_direction"`
	BestWindDirection  string       `json:"best_wind_direction"`
	BestSwellDirection string       `json:"best_swell_direction"`
	BestSwellSizeFeet  Number       `json:"best_swell_size_feet"`
	BestSwellSizeMeter Number       `json:"best_swell_size_meter"`
	BestTide           StringSet    `json:"best_tide"`
	SurfLevel          StringSet    `json:"surf_level"`
	SurfHazards        StringSet    `json:"surf_hazards,omitempty"`
	BestMonths         StringSet    `json:"best_months"`
	Description        string       `json:"description,omitempty"`
	SpotImages         []Image      `json:"spot_images,omitempty"`
}

// UnmarshalJSON декодирует спот, приводя текстовые поля через Text:
// например, числовой break_type даёт пустое значение, а не ошибку списка
func (s *SurfSpot) UnmarshalJSON(data []byte) error {
	type plain SurfSpot
	aux := struct {
		*plain
		ID                 Text            `json:"id"`
		Name               Text            `json:"name"`
		Slug               Text            `json:"slug"`
		BreakType          Text            `json:"break_type"`
		WaveDirection      Text            `json:"wave_direction"`
		BestWindDirection  Text            `json:"best_wind_direction"`
		BestSwellDirection Text            `json:"best_swell_direction"`
		Description        Text            `json:"description"`
		SpotImages         json.RawMessage `json:"spot_images"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.ID = string(aux.ID)
	s.Name = string(aux.Name)
	s.Slug = string(aux.Slug)
	s.BreakType = string(aux.BreakType)
	s.WaveDirection = string(aux.WaveDirection)
	s.BestWindDirection = string(aux.BestWindDirection)
	s.BestSwellDirection = string(aux.BestSwellDirection)
	s.Description = string(aux.Description)
	s.SpotImages = decodeItems[Image](aux.SpotImages)
	return nil
}
