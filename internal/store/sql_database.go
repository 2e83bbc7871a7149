package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/migrations"
)

const (
	driverSQLite   = "sqlite3"
	driverPostgres = "pgx"
)

// DB wraps a *sql.DB together with the driver it was opened with, so that
// repositories can pick the right placeholder format and migrations the
// right goose dialect.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the keystore database described by cfg. A postgres:// or
// postgresql:// DSN selects PostgreSQL, anything else is a SQLite file path.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies the embedded goose migrations for the current driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// statementBuilder returns a squirrel builder using the placeholder format of
// the underlying driver.
func (db *DB) statementBuilder() sq.StatementBuilderType {
	if db.driver == driverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// classify reports whether err is worth retrying. Drivers without a
// classifier never retry.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
