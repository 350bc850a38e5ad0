package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/domain/repository"
)

type snapshotRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSnapshotRepository создает репозиторий снапшотов каталога
func NewSnapshotRepository(db *DB, logger *zap.Logger) repository.SnapshotRepository {
	return &snapshotRepository{
		db:     db,
		logger: logger,
	}
}

// Save заменяет снапшот того же вида (upsert по kind)
func (r *snapshotRepository) Save(ctx context.Context, snapshot *domain.CatalogSnapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}
	if snapshot.FetchedAt.IsZero() {
		snapshot.FetchedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO catalog_snapshots (kind, payload, item_count, fetched_at)
		VALUES (:kind, :payload, :item_count, :fetched_at)
		ON CONFLICT (kind) DO UPDATE SET
			payload = EXCLUDED.payload,
			item_count = EXCLUDED.item_count,
			fetched_at = EXCLUDED.fetched_at
	`

	// pgx передаёт []byte как bytea, для jsonb нужен текст
	args := map[string]interface{}{
		"kind":       string(snapshot.Kind),
		"payload":    string(snapshot.Payload),
		"item_count": snapshot.ItemCount,
		"fetched_at": snapshot.FetchedAt,
	}

	if _, err := r.db.NamedExecContext(ctx, query, args); err != nil {
		r.logger.Error("failed to save snapshot", zap.String("kind", string(snapshot.Kind)), zap.Error(err))
		return fmt.Errorf("save snapshot %s: %w", snapshot.Kind, err)
	}

	r.logger.Debug("snapshot saved",
		zap.String("kind", string(snapshot.Kind)),
		zap.Int("items", snapshot.ItemCount))
	return nil
}

// Latest возвращает nil, nil если снапшота ещё нет
func (r *snapshotRepository) Latest(ctx context.Context, kind domain.SnapshotKind) (*domain.CatalogSnapshot, error) {
	query := `
		SELECT kind, payload::text AS payload, item_count, fetched_at
		FROM catalog_snapshots
		WHERE kind = $1
	`

	var row struct {
		Kind      string    `db:"kind"`
		Payload   string    `db:"payload"`
		ItemCount int       `db:"item_count"`
		FetchedAt time.Time `db:"fetched_at"`
	}
	if err := r.db.GetContext(ctx, &row, query, string(kind)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to load snapshot", zap.String("kind", string(kind)), zap.Error(err))
		return nil, fmt.Errorf("load snapshot %s: %w", kind, err)
	}

	return &domain.CatalogSnapshot{
		Kind:      domain.SnapshotKind(row.Kind),
		Payload:   []byte(row.Payload),
		ItemCount: row.ItemCount,
		FetchedAt: row.FetchedAt,
	}, nil
}

// Stats считает записи по сохранённым снапшотам
func (r *snapshotRepository) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	stats := &domain.CatalogStats{}

	countsQuery := `
		SELECT
			COALESCE(MAX(item_count) FILTER (WHERE kind = $1), 0) AS surf_zones,
			COALESCE(MAX(item_count) FILTER (WHERE kind = $2), 0) AS surf_spots,
			COALESCE(MAX(fetched_at), 'epoch'::timestamptz) AS last_updated
		FROM catalog_snapshots
	`
	err := r.db.QueryRowxContext(ctx, countsQuery, string(domain.SnapshotSurfZones), string(domain.SnapshotSurfSpots)).
		Scan(&stats.SurfZones, &stats.SurfSpots, &stats.LastUpdated)
	if err != nil {
		r.logger.Error("failed to query snapshot counts", zap.Error(err))
		return nil, fmt.Errorf("query snapshot counts: %w", err)
	}

	// country приходит объектом (полная проекция) или строкой (lite)
	countriesQuery := `
		SELECT COUNT(DISTINCT COALESCE(z->'country'->>'name', z->>'country'))
		FROM catalog_snapshots s,
			jsonb_array_elements(CASE WHEN jsonb_typeof(s.payload) = 'array' THEN s.payload ELSE '[]'::jsonb END) z
		WHERE s.kind = $1
	`
	if err := r.db.GetContext(ctx, &stats.Countries, countriesQuery, string(domain.SnapshotSurfZones)); err != nil {
		r.logger.Warn("failed to count countries", zap.Error(err))
		stats.Countries = 0
	}

	return stats, nil
}
