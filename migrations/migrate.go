// Package migrations embeds the SQL schema of both databases used by
// go-stock-keeper and applies it with goose.
//
// The server keeps the authoritative product table in PostgreSQL; the client
// keeps a local cache of the same rows in SQLite. Each dialect has its own
// migration directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when a migration is requested on a nil connection.
var ErrNilDB = errors.New("db is nil")

// goose keeps dialect and base FS in package-level state.
var gooseMu sync.Mutex

// MigratePostgres applies the server schema using the pgx dialect.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, "pgx", "postgres")
}

// MigrateSQLite applies the client cache schema.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, "sqlite3", "sqlite")
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
