package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLite implements BlobStore over the blobs table created by the
// 20260301_120000_create_blobs migration.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed blob store.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Get returns the blob stored under key, or (nil, nil) when absent.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT blob FROM blobs WHERE key = ?`, key,
	).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading blob %q: %w", key, err)
	}
	return blob, nil
}

// Set replaces the blob stored under key. The upsert runs as a single
// statement, so readers never observe a partially written value.
func (s *SQLite) Set(ctx context.Context, key string, blob []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, blob, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			blob = excluded.blob,
			updated_at = excluded.updated_at`,
		key, blob, now,
	)
	if err != nil {
		return fmt.Errorf("writing blob %q: %w", key, err)
	}
	return nil
}
