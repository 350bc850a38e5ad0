package dto

import (
	"time"

	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/filter"
)

// CreateSessionRequest - создание сессии фильтров для страницы
type CreateSessionRequest struct {
	Page string `json:"page" validate:"required,oneof=home surfzones surfzones-explore surfspots surfspots-explore"`
}

// SetFilterRequest - установка значения фасета; пустое значение снимает фильтр
type SetFilterRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

// SessionResponse - состояние сессии фильтров
type SessionResponse struct {
	ID         string            `json:"id"`
	Page       string            `json:"page"`
	Entity     string            `json:"entity"`
	Strategy   string            `json:"strategy"`
	Selection  filter.Selection  `json:"selection"`
	SurfZones  []domain.SurfZone `json:"surf_zones,omitempty"`
	SurfSpots  []domain.SurfSpot `json:"surf_spots,omitempty"`
	Total      int               `json:"total"`
	Loading    bool              `json:"loading"`
	Error      string            `json:"error,omitempty"`
	Generation uint64            `json:"generation"`
	UpdatedAt  *time.Time        `json:"updated_at,omitempty"`
	// Effect - куда прокрутить страницу после изменения фильтра
	Effect string `json:"effect,omitempty"`
}
