package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nerrad567/gray-logic-sentry/internal/storage"
)

// Logger defines the logging interface used by the Store.
// It matches the subset of *logging.Logger the store needs.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

// StoreConfig wires a Store to its persistence. Both fields are explicit:
// there is no package-level default key or store handle, so a Store is
// trivially testable against an in-memory blob store.
type StoreConfig struct {
	// Key is the storage key the scenario list lives under.
	Key string

	// Blobs is the underlying blob store.
	Blobs storage.BlobStore
}

// Store persists the saved-scenario list as one JSON array blob.
type Store struct {
	key    string
	blobs  storage.BlobStore
	logger Logger
}

// NewStore creates a scenario store from explicit configuration.
func NewStore(cfg StoreConfig) (*Store, error) {
	if cfg.Blobs == nil {
		return nil, ErrNoStore
	}
	if strings.TrimSpace(cfg.Key) == "" {
		return nil, ErrNoKey
	}
	return &Store{
		key:    cfg.Key,
		blobs:  cfg.Blobs,
		logger: noopLogger{},
	}, nil
}

// SetLogger sets the logger for corruption diagnostics.
func (s *Store) SetLogger(logger Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// wireScenario shadows Scenario with pointer fields so the structural
// check can tell "absent" from "empty".
type wireScenario struct {
	Name             *string `json:"name"`
	Rows             *[]Row  `json:"rows"`
	AssumeForSeconds string  `json:"assume_for_seconds"`
}

// Load reads the scenario list. Corruption degrades, never raises:
//
//   - a failed read or a blob that is not a JSON array yields an empty list
//   - an entry that is not an object, or lacks a string name or a rows
//     list, is dropped while well-formed siblings are kept
//
// The stored blob is never modified from this read path; a later Save is
// the only thing that replaces it.
func (s *Store) Load(ctx context.Context) ([]Scenario, error) {
	blob, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("scenario blob unreadable, treating as empty", "key", s.key, "error", err)
		return []Scenario{}, nil
	}
	if len(blob) == 0 {
		return []Scenario{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(blob, &entries); err != nil {
		s.logger.Warn("scenario blob is not a list, treating as empty", "key", s.key, "error", err)
		return []Scenario{}, nil
	}

	scenarios := make([]Scenario, 0, len(entries))
	for i, raw := range entries {
		var w wireScenario
		if err := json.Unmarshal(raw, &w); err != nil {
			s.logger.Debug("dropping malformed scenario entry", "index", i, "error", err)
			continue
		}
		if w.Name == nil || strings.TrimSpace(*w.Name) == "" || w.Rows == nil {
			s.logger.Debug("dropping structurally invalid scenario entry", "index", i)
			continue
		}
		scenarios = append(scenarios, Scenario{
			Name:             *w.Name,
			Rows:             *w.Rows,
			AssumeForSeconds: w.AssumeForSeconds,
		})
	}
	return scenarios, nil
}

// Save overwrites the whole scenario list. Write failures propagate to the
// caller untouched; there are no retries and no partial writes at this
// layer.
func (s *Store) Save(ctx context.Context, scenarios []Scenario) error {
	if scenarios == nil {
		scenarios = []Scenario{}
	}
	blob, err := json.Marshal(scenarios)
	if err != nil {
		return fmt.Errorf("encoding scenarios: %w", err)
	}
	return s.blobs.Set(ctx, s.key, blob)
}

// Find returns the named scenario from a loaded list.
func Find(scenarios []Scenario, name string) (Scenario, bool) {
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}
