// Package sqlitekv stores the snapshot in a single-table SQLite
// key-value store, mirroring the key/value shape of the slot itself.
package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"taskpad/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

type Slot struct {
	db *sql.DB
}

// Open opens (or creates) the database file and ensures the schema.
// Pass ":memory:" for an ephemeral store in tests.
func Open(dbPath string) (*Slot, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Slot{db: db}, nil
}

func (s *Slot) Read(ctx context.Context) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, storage.Key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", storage.Key, err)
	}
	return value, true, nil
}

// Write upserts the row in one statement; SQLite makes the replace
// atomic, so readers see the old value or the new one, nothing else.
func (s *Slot) Write(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		storage.Key, data)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", storage.Key, err)
	}
	return nil
}

func (s *Slot) Close() error {
	return s.db.Close()
}
