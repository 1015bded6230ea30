package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// openTestDB opens a throwaway database file for one test.
func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(Config{
		Path:        filepath.Join(t.TempDir(), "sentry.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() }) //nolint:errcheck // test cleanup

	return db
}

func TestOpenCreatesFileAndDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "sentry.db")

	db, err := Open(Config{Path: dbPath, WALMode: true, BusyTimeout: 5})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close() //nolint:errcheck // test cleanup

	// The ping during Open forces the file into existence.
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file missing after Open: %v", err)
	}
}

func TestOpenWithoutWAL(t *testing.T) {
	db, err := Open(Config{
		Path:        filepath.Join(t.TempDir(), "sentry.db"),
		BusyTimeout: 1,
	})
	if err != nil {
		t.Fatalf("Open() without WAL error = %v", err)
	}
	defer db.Close() //nolint:errcheck // test cleanup
}

func TestBlobRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE blobs (
			key TEXT PRIMARY KEY,
			blob BLOB NOT NULL,
			updated_at TEXT NOT NULL
		) STRICT
	`); err != nil {
		t.Fatalf("creating blobs table: %v", err)
	}

	payload := []byte(`[{"name":"night watch","rows":[]}]`)
	if _, err := db.ExecContext(ctx,
		"INSERT INTO blobs (key, blob, updated_at) VALUES (?, ?, ?)",
		"sentry.scenarios", payload, "2026-08-25T21:00:00Z",
	); err != nil {
		t.Fatalf("inserting blob: %v", err)
	}

	var got []byte
	if err := db.QueryRowContext(ctx,
		"SELECT blob FROM blobs WHERE key = ?", "sentry.scenarios",
	).Scan(&got); err != nil {
		t.Fatalf("reading blob: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("blob round trip: got %q, want %q", got, payload)
	}
}

func TestCloseIsIdempotentOnNilHandle(t *testing.T) {
	db, err := Open(Config{
		Path:        filepath.Join(t.TempDir(), "sentry.db"),
		BusyTimeout: 1,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if err := db.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	db.DB = nil
	if err := db.Close(); err != nil {
		t.Errorf("Close() with nil handle error = %v", err)
	}
}
