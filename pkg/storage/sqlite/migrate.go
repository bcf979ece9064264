package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kasuboski/sceneid/pkg/logger"
	"go.uber.org/zap"
)

const migrationsTable = "schema_migrations"

//go:embed migrations/*.sql
var migrationFiles embed.FS

// newMigrator binds the embedded migrations to db. The migrator is never
// closed since that would close db as well.
func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{
		MigrationsTable: migrationsTable,
		NoTxWrap:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", source, "sqlite3", driver)
}

// runMigrations applies every migration that has not been applied yet
func runMigrations(ctx context.Context, db *sql.DB) error {
	log := logger.FromCtx(ctx)

	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	before, _, err := currentVersion(m)
	if err != nil {
		return err
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		log.Debugw("schema is up to date", zap.Uint("version", before))
		return nil
	case err != nil:
		return fmt.Errorf("failed to run migrations from version %d: %w", before, err)
	}

	after, _, err := currentVersion(m)
	if err != nil {
		return err
	}

	log.Infow("migrated schema", zap.Uint("from", before), zap.Uint("to", after))
	return nil
}

func currentVersion(m *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}

	return version, dirty, nil
}

// GetMigrationVersion reports the applied schema version, 0 before any migration ran
func (s *SQLite) GetMigrationVersion() (version uint, dirty bool, err error) {
	m, err := newMigrator(s.db)
	if err != nil {
		return 0, false, err
	}

	return currentVersion(m)
}
