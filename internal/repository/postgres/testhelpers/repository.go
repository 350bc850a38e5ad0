package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/domain/repository"
	"github.com/surfquest-catalog/internal/repository/postgres"
)

// NewSnapshotRepositoryForTest создает репозиторий снапшотов поверх тестового подключения
func NewSnapshotRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.SnapshotRepository {
	return postgres.NewSnapshotRepository(postgres.NewDBForTest(db, logger), logger)
}
