package domain

import "time"

// ReviewAuthor - автор отзыва
type ReviewAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// ReviewTarget - краткая информация о зоне/споте, к которой относится отзыв
type ReviewTarget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Review - отзыв пользователя о зоне или споте
type Review struct {
	ID              string        `json:"id"`
	User            *ReviewAuthor `json:"user,omitempty"`
	SurfZone        *string       `json:"surf_zone"`
	SurfSpot        *string       `json:"surf_spot"`
	SurfZoneDetails *ReviewTarget `json:"surf_zone_details,omitempty"`
	SurfSpotDetails *ReviewTarget `json:"surf_spot_details,omitempty"`
	Rating          int           `json:"rating"`
	Comment         string        `json:"comment"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ReviewInput - тело запроса на создание/обновление отзыва (ключи write-сериализатора бэкенда)
type ReviewInput struct {
	SurfZone *string `json:"surf_zone"`
	SurfSpot *string `json:"surf_spot"`
	Rating   int     `json:"rating"`
	Comment  string  `json:"comment"`
}

// ReviewQuery - фильтр публичного списка отзывов
type ReviewQuery struct {
	SurfZoneID string
	SurfSpotID string
}
