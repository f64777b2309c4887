// Package repo contains all persistence logic for the Travel Planner API.
//
// Storage is a local SQLite file holding one JSON document per collection key
// (the layout the browser local-storage version of this application used).
// Each resource has its own file with an interface and a kv-backed
// implementation. No business logic lives here — only JSON mapping and the
// minimal load-time shape checks.
package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/hmnguyen/travel-planner/backend/migrations"
)

// Store keys. One key per collection; the value is always a JSON array.
const (
	// TripsKey holds the JSON array of all saved trips.
	TripsKey = "travel_trips"
	// DestinationsKey holds the JSON array of the destination catalog.
	DestinationsKey = "travel_destinations"
)

// KV is the injected persistence capability the repositories build on:
// load a JSON document by key, save a JSON document under a key. Writes are
// atomic per key; there is no cross-key transaction and none is needed,
// since every collection is saved as a unit.
type KV interface {
	// Load returns the value stored under key.
	// The boolean is false (with a nil error) when the key is absent.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error
}

// SQLiteKV is the SQLite-file implementation of KV.
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLiteKV opens (or creates) the SQLite database at path and runs the
// embedded goose migrations so the kv table always exists. The parent
// directory is created if missing.
func OpenSQLiteKV(path string) (*SQLiteKV, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("repo.OpenSQLiteKV: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLiteKV: open: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under the server's concurrent handlers.
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteKV{db: db}, nil
}

// Migrate applies the embedded goose migrations to db.
// Exposed separately so tests can prepare a database the same way the
// server bootstrap does.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("repo.Migrate: set dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("repo.Migrate: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

// Load returns the document stored under key, or found=false when absent.
func (s *SQLiteKV) Load(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM kv_store WHERE key = ?`

	var value []byte
	err := s.db.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("repo.SQLiteKV.Load: %w", err)
	}
	return value, true, nil
}

// Save upserts the document under key.
func (s *SQLiteKV) Save(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("repo.SQLiteKV.Save: %w", err)
	}
	return nil
}
