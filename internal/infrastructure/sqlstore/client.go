package sqlstore

import (
	"context"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/todolite/backend/internal/config"
)

// Dialect identifies the concrete SQL backend behind a DSN.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Resolve maps a DATABASE_URL onto a database/sql driver name, the
// connection string that driver expects, and the migration dialect.
// `postgres://` selects pgx; everything else is treated as a sqlite file
// path, with an optional `sqlite:` prefix as in `sqlite:db.sqlite`.
func Resolve(dsn string) (driver, connString string, dialect Dialect) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "pgx", dsn, DialectPostgres
	case strings.HasPrefix(dsn, "sqlite:"):
		return "sqlite3", strings.TrimPrefix(dsn, "sqlite:"), DialectSQLite
	default:
		return "sqlite3", dsn, DialectSQLite
	}
}

// Open creates and validates a pooled connection to the configured store.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*sqlx.DB, Dialect, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	driver, connString, dialect := Resolve(cfg.URL)

	db, err := sqlx.Open(driver, connString)
	if err != nil {
		return nil, dialect, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxConnLifetime > 0 {
		db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, dialect, err
	}

	logger.Info("connected to store", zap.String("driver", driver), zap.String("dialect", string(dialect)))
	return db, dialect, nil
}
