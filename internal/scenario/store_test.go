package scenario

import (
	"context"
	"errors"
	"testing"

	"github.com/nerrad567/gray-logic-sentry/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()

	blobs := storage.NewMemory()
	store, err := NewStore(StoreConfig{Key: "sentry.scenarios", Blobs: blobs})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store, blobs
}

func TestNewStoreConfig(t *testing.T) {
	if _, err := NewStore(StoreConfig{Key: "k"}); !errors.Is(err, ErrNoStore) {
		t.Errorf("missing blobs: error = %v, want ErrNoStore", err)
	}
	if _, err := NewStore(StoreConfig{Blobs: storage.NewMemory()}); !errors.Is(err, ErrNoKey) {
		t.Errorf("missing key: error = %v, want ErrNoKey", err)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("fresh store should load empty, got %v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sc := New("Break-in while away")
	sc.AssumeForSeconds = "30"
	row := NewRow()
	row.EntityID = "front_door.contact"
	row.State = "open"
	sc.Rows = append(sc.Rows, row)

	if err := store.Save(ctx, []Scenario{sc}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Load returned %d scenarios, want 1", len(got))
	}
	if got[0].Name != sc.Name || got[0].AssumeForSeconds != "30" {
		t.Errorf("round trip header: %+v", got[0])
	}
	if len(got[0].Rows) != 1 || got[0].Rows[0] != row {
		t.Errorf("round trip rows: %+v", got[0].Rows)
	}
}

func TestLoadCorruptBlobDegradesToEmpty(t *testing.T) {
	store, blobs := newTestStore(t)
	ctx := context.Background()

	// A JSON object where an array belongs.
	corrupt := []byte(`{"name":"not a list"}`)
	if err := blobs.Set(ctx, "sentry.scenarios", corrupt); err != nil {
		t.Fatalf("seeding blob: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load should not raise on corruption: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("corrupt blob should load empty, got %v", got)
	}

	// The read path must not repair or delete the bad blob.
	raw, err := blobs.Get(ctx, "sentry.scenarios")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(raw) != string(corrupt) {
		t.Errorf("corrupt blob was modified by Load: %q", raw)
	}
}

func TestLoadFiltersInvalidEntries(t *testing.T) {
	store, blobs := newTestStore(t)
	ctx := context.Background()

	blob := `[
		{"name":"good","rows":[],"assume_for_seconds":"5"},
		{"rows":[]},
		{"name":"no rows field"},
		{"name":"","rows":[]},
		42,
		{"name":"also good","rows":[{"id":"r1","entity_id":"hall.motion","state":"on"}]}
	]`
	if err := blobs.Set(ctx, "sentry.scenarios", []byte(blob)); err != nil {
		t.Fatalf("seeding blob: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load kept %d entries, want 2: %+v", len(got), got)
	}
	if got[0].Name != "good" || got[1].Name != "also good" {
		t.Errorf("wrong survivors: %+v", got)
	}
}

// failingStore always fails writes but reads fine.
type failingStore struct {
	*storage.Memory
	writeErr error
}

func (f *failingStore) Set(context.Context, string, []byte) error {
	return f.writeErr
}

func TestSaveWriteFailurePropagates(t *testing.T) {
	wantErr := errors.New("disk full")
	store, err := NewStore(StoreConfig{
		Key:   "sentry.scenarios",
		Blobs: &failingStore{Memory: storage.NewMemory(), writeErr: wantErr},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := store.Save(context.Background(), []Scenario{New("x")}); !errors.Is(err, wantErr) {
		t.Errorf("Save error = %v, want %v", err, wantErr)
	}
}

func TestLoadReadFailureDegradesToEmpty(t *testing.T) {
	store, err := NewStore(StoreConfig{
		Key:   "sentry.scenarios",
		Blobs: &readFailingStore{},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	got, loadErr := store.Load(context.Background())
	if loadErr != nil {
		t.Fatalf("Load should degrade, not raise: %v", loadErr)
	}
	if len(got) != 0 {
		t.Errorf("failed read should load empty, got %v", got)
	}
}

type readFailingStore struct{}

func (readFailingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("backend offline")
}

func (readFailingStore) Set(context.Context, string, []byte) error {
	return nil
}

func TestNewRowDefaults(t *testing.T) {
	a := NewRow()
	b := NewRow()

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("row ids must be fresh and unique: %q vs %q", a.ID, b.ID)
	}
	if a.EntityID != "" {
		t.Errorf("new row entity id should be empty, got %q", a.EntityID)
	}
	if a.State != "on" {
		t.Errorf("new row state should default to on, got %q", a.State)
	}
}

func TestFind(t *testing.T) {
	list := []Scenario{New("a"), New("b")}

	if _, ok := Find(list, "b"); !ok {
		t.Error("expected to find scenario b")
	}
	if _, ok := Find(list, "c"); ok {
		t.Error("did not expect to find scenario c")
	}
}
