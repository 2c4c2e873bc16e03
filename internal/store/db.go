// Package store implements durable persistence for users, clients and
// projects on top of a relational database.
//
// A single [*DB] handle is constructed once at process start (PostgreSQL or
// SQLite, selected by configuration) and injected into the repositories.
// Each repository method acquires its own statement or transaction on that
// handle and releases it on every exit path; no state is cached between
// operations — the database is the single source of truth.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/freelance-hub/internal/config"
	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/migrations"
)

// DB wraps the sql.DB connection together with the dialect-specific pieces
// the repositories need: a squirrel statement builder configured with the
// right placeholder format and the row-locking suffix for read-modify-write
// transactions.
type DB struct {
	*sql.DB

	driver  string
	builder sq.StatementBuilderType

	// lockSuffix is appended to SELECTs inside read-modify-write
	// transactions. "FOR UPDATE" on PostgreSQL; empty on SQLite, whose
	// single-writer locking already serializes the transaction.
	lockSuffix string

	logger *logger.Logger
}

// NewConnect opens a database connection for the configured driver and
// verifies it with a ping. Supported drivers are "pgx" and "sqlite3".
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return newConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return newConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

func newConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "newConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "newConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "newConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		driver:     "pgx",
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		lockSuffix: "FOR UPDATE",
		logger:     log,
	}, nil
}

func newConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in a file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "newConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		driver:  "sqlite3",
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}, nil
}

// Migrate applies all pending schema migrations for the connected engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
