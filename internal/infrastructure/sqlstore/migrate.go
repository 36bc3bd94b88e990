package sqlstore

import (
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/todolite/backend/internal/config"
)

// RunMigrations applies the schema migrations for the store's dialect,
// reusing the service connection pool. Missing migrations to apply is not
// an error.
func RunMigrations(cfg *config.Config, db *sqlx.DB, dialect Dialect, logger *zap.Logger) error {
	if cfg == nil || !cfg.Migrations.Enabled {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		driver database.Driver
		err    error
	)
	switch dialect {
	case DialectPostgres:
		driver, err = migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	default:
		driver, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	}
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(filepath.Join(cfg.Migrations.Path, string(dialect))))
	m, err := migrate.NewWithDatabaseInstance(sourceURL, string(dialect), driver)
	if err != nil {
		return fmt.Errorf("migration setup: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration up: %w", err)
	}

	logger.Info("database migrations applied", zap.String("dialect", string(dialect)))
	return nil
}
