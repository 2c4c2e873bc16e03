// Package migrations applies the embedded goose SQL migrations that create
// the users, clients and projects tables.
//
// Two migration sets are embedded, one per supported engine, because the
// DDL differs (BIGSERIAL vs AUTOINCREMENT, NUMERIC vs REAL). The driver
// name passed to Migrate selects the set and the goose dialect.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate runs all pending migrations for the given driver ("pgx" or
// "sqlite3") against db. It is idempotent: already-applied versions are
// skipped by goose's version table.
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dialect, dir := "pgx", "postgres"
	if driver == "sqlite3" {
		dialect, dir = "sqlite3", "sqlite"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
