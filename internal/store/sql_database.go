package store

import (
	"database/sql"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/migrations"
)

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite"
)

// DB wraps a *sql.DB opened for one of the supported dialects.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	if db.dialect == dialectSQLite {
		return migrations.MigrateSQLite(db.DB)
	}
	return migrations.MigratePostgres(db.DB)
}
