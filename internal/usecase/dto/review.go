package dto

// ReviewRequest - создание или обновление отзыва.
// Ровно одно из полей surf_zone / surf_spot должно быть заполнено.
type ReviewRequest struct {
	SurfZone *string `json:"surf_zone" validate:"omitempty,uuid"`
	SurfSpot *string `json:"surf_spot" validate:"omitempty,uuid"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Comment  string  `json:"comment" validate:"max=2000"`
}

// ReviewListRequest - фильтр публичных отзывов
type ReviewListRequest struct {
	SurfZoneID string `query:"surf_zone_id" validate:"omitempty,uuid"`
	SurfSpotID string `query:"surf_spot_id" validate:"omitempty,uuid"`
}
