package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	// dirMode is the permission mode for the database directory.
	dirMode = 0750

	// fileMode keeps the database file owner read/write only.
	fileMode = 0600

	// openTimeout bounds the connectivity check during Open.
	openTimeout = 5 * time.Second
)

// DB is the handle the blob store runs on: one SQLite file, one writer.
type DB struct {
	*sql.DB
}

// Config mirrors the database section of config.yaml.
type Config struct {
	// Path is the SQLite file location. Parent directories are created
	// on open.
	Path string

	// WALMode switches the journal to write-ahead logging so reads do
	// not block behind the writer.
	WALMode bool

	// BusyTimeout is how many seconds a locked database is retried
	// before giving up.
	BusyTimeout int
}

// Open connects to the SQLite file at cfg.Path, creating the file and its
// directory on first run. The pool is pinned to a single connection: the
// scenario blob is read-modify-write over one row, and SQLite allows only
// one writer regardless.
func Open(cfg Config) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), dirMode); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite3", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close() //nolint:errcheck // already on the error path
		return nil, fmt.Errorf("verifying database connection: %w", err)
	}

	// The file only appears once something is written; tighten the mode
	// when it already exists and otherwise leave it to the next open.
	_ = os.Chmod(cfg.Path, fileMode) //nolint:errcheck // first run has no file yet

	return &DB{DB: sqlDB}, nil
}

// dsn builds the go-sqlite3 connection string for cfg.
func dsn(cfg Config) string {
	s := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on",
		cfg.Path, cfg.BusyTimeout*1000)
	if cfg.WALMode {
		s += "&_journal_mode=WAL&_synchronous=NORMAL"
	}
	return s
}

// Close shuts the connection down. Safe to call on a handle whose
// connection was never established.
func (db *DB) Close() error {
	if db.DB == nil {
		return nil
	}
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
