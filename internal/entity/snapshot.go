package entity

import (
	"strings"

	"github.com/nerrad567/gray-logic-sentry/internal/rule"
)

// Snapshot is an immutable set of entity ids known to the external registry
// at a point in time. The zero value knows nothing.
type Snapshot struct {
	ids map[string]struct{}
}

// NewSnapshot builds a snapshot from a flat id list. Ids are trimmed;
// blanks are dropped.
func NewSnapshot(ids []string) Snapshot {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return Snapshot{ids: set}
}

// Known reports whether the registry knew the entity id when the snapshot
// was taken.
func (s Snapshot) Known(id string) bool {
	_, ok := s.ids[strings.TrimSpace(id)]
	return ok
}

// Len returns the number of known entities.
func (s Snapshot) Len() int {
	return len(s.ids)
}

// UnknownEntities returns the entity ids a rule document references that
// the snapshot does not know, deduplicated, in first-reference order
// (conditions before actions). Incomplete rows with empty entity ids are
// skipped; they are a validation concern, not a registry one.
func UnknownEntities(s Snapshot, d *rule.Document) []string {
	if d == nil {
		return nil
	}

	var unknown []string
	seen := make(map[string]struct{})
	note := func(id string) {
		id = strings.TrimSpace(id)
		if id == "" || s.Known(id) {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		unknown = append(unknown, id)
	}

	for _, c := range d.Conditions {
		if c.Kind == rule.ConditionEntityState {
			note(c.EntityID)
		}
	}
	for _, a := range d.Actions {
		if a.Kind == rule.ActionZigbeeLight {
			note(a.EntityID)
		}
	}

	return unknown
}
