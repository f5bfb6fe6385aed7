package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/learnsite/internal/db"
)

// SQLite persists entries in the kv_entries table.
type SQLite struct {
	db *db.DB
}

// NewSQLite wraps an already-open database.
func NewSQLite(database *db.DB) *SQLite {
	return &SQLite{db: database}
}

// OpenSQLite opens (or creates) the database file at path.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite store requires a path")
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	return &SQLite{db: database}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
