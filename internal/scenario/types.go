package scenario

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Row is one asserted entity state within a scenario. Rows are owned by
// their containing Scenario and addressed by an opaque generated id, never
// by position, so reordering and removal cannot silently shift meaning.
type Row struct {
	ID       string `json:"id"`
	EntityID string `json:"entity_id"`
	State    string `json:"state"`
}

// defaultRowState is the state a freshly created row asserts.
const defaultRowState = "on"

// NewRow creates a fresh row: generated id, empty entity, state "on".
// The id is unique enough for row identity; it is not a security token.
func NewRow() Row {
	return Row{
		ID:    uuid.New().String(),
		State: defaultRowState,
	}
}

// Scenario is a named set of asserted entity states plus the number of
// seconds those assertions should be treated as valid for.
//
// AssumeForSeconds is kept as a decimal string for wire fidelity with the
// flat persisted layout; AssumedDuration parses and validates it.
type Scenario struct {
	Name             string `json:"name"`
	Rows             []Row  `json:"rows"`
	AssumeForSeconds string `json:"assume_for_seconds"`
}

// New creates an empty scenario with the given name.
func New(name string) Scenario {
	return Scenario{Name: name, Rows: []Row{}}
}

// AssumedDuration parses the assume-for-seconds value. Empty means zero;
// anything else must be a non-negative whole number.
func (s Scenario) AssumedDuration() (time.Duration, error) {
	trimmed := strings.TrimSpace(s.AssumeForSeconds)
	if trimmed == "" {
		return 0, nil
	}
	seconds, err := strconv.Atoi(trimmed)
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadAssumeSeconds, s.AssumeForSeconds)
	}
	return time.Duration(seconds) * time.Second, nil
}

// Snapshot flattens the scenario's rows into an entity-id -> state lookup.
// Later rows win on duplicate entity ids: a scenario may redefine a sensor
// mid-edit and the final assertion is the one that counts. Rows with empty
// entity ids are skipped. Both ids and states are trimmed; comparisons
// elsewhere are always post-trim.
func (s Scenario) Snapshot() map[string]string {
	snap := make(map[string]string, len(s.Rows))
	for _, row := range s.Rows {
		entityID := strings.TrimSpace(row.EntityID)
		if entityID == "" {
			continue
		}
		snap[entityID] = strings.TrimSpace(row.State)
	}
	return snap
}
