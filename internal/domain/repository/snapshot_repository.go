package repository

import (
	"context"

	"github.com/surfquest-catalog/internal/domain"
)

// SnapshotRepository хранит последние успешно загруженные коллекции каталога
type SnapshotRepository interface {
	// Save сохраняет снапшот, заменяя предыдущий снапшот того же вида
	Save(ctx context.Context, snapshot *domain.CatalogSnapshot) error

	// Latest возвращает последний снапшот вида kind или nil, если его нет
	Latest(ctx context.Context, kind domain.SnapshotKind) (*domain.CatalogSnapshot, error)

	// Stats возвращает количество записей и время последнего обновления
	Stats(ctx context.Context) (*domain.CatalogStats, error)
}
