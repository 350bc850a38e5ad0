package dto

import "github.com/surfquest-catalog/internal/catalog"

// Источник данных коллекции
const (
	SourceCache    = "cache"
	SourceBackend  = "backend"
	SourceSnapshot = "snapshot"
)

// OptionsResponse - списки значений для всех фасетов
type OptionsResponse = catalog.Options

// BestDestinationsRequest - запрос лучших направлений месяца
type BestDestinationsRequest struct {
	Month string `query:"month" validate:"omitempty,month"`
}
