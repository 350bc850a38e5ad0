package domain

import "time"

// SnapshotKind - тип сохранённой коллекции каталога
type SnapshotKind string

const (
	SnapshotSurfZones SnapshotKind = "surfzones"
	SnapshotSurfSpots SnapshotKind = "surfspots"
)

// CatalogSnapshot - последняя успешно загруженная коллекция (last-known-good).
// Payload хранит JSON как его вернул бэкенд.
type CatalogSnapshot struct {
	Kind      SnapshotKind `json:"kind" db:"kind"`
	Payload   []byte       `json:"-" db:"payload"`
	ItemCount int          `json:"item_count" db:"item_count"`
	FetchedAt time.Time    `json:"fetched_at" db:"fetched_at"`
}

// CatalogStats - сводка по загруженному каталогу
type CatalogStats struct {
	SurfZones   int       `json:"surf_zones"`
	SurfSpots   int       `json:"surf_spots"`
	Countries   int       `json:"countries"`
	LastUpdated time.Time `json:"last_updated"`
}
