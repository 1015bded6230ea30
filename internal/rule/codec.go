package rule

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nerrad567/gray-logic-sentry/internal/schedule"
)

// wireDocument is the canonical JSON shape consumed by the server-side
// rule engine: {name, enabled, conditions, combine_mode, actions, schedule}.
// Row ids travel on the wire so identity survives a round trip.
type wireDocument struct {
	Name        string             `json:"name"`
	Enabled     bool               `json:"enabled"`
	Conditions  []ConditionRow     `json:"conditions"`
	CombineMode string             `json:"combine_mode"`
	Actions     []ActionRow        `json:"actions"`
	Schedule    *schedule.Schedule `json:"schedule"`
}

// Encode serialises the document to the engine wire shape. Rows are
// normalised on the way out so the engine never sees untrimmed values.
func Encode(d *Document) ([]byte, error) {
	if d == nil {
		return nil, ErrInvalidDocument
	}

	w := wireDocument{
		Name:        d.Name,
		Enabled:     d.Enabled,
		Conditions:  make([]ConditionRow, 0, len(d.Conditions)),
		CombineMode: string(d.CombineMode),
		Actions:     make([]ActionRow, 0, len(d.Actions)),
		Schedule:    d.Schedule,
	}
	if w.CombineMode == "" {
		w.CombineMode = string(CombineAll)
	}
	for _, c := range d.Conditions {
		w.Conditions = append(w.Conditions, NormalizeCondition(c))
	}
	for _, a := range d.Actions {
		w.Actions = append(w.Actions, NormalizeAction(a))
	}

	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// Decode parses a wire document, failing closed on anything structurally
// unsound: malformed JSON, an unrecognised condition or action kind, an
// unknown combine mode, or a broken schedule. Partial acceptance is never
// an option; a dropped action would hide a misconfigured rule as a no-op.
//
// Decoded documents always carry non-nil condition and action sequences,
// and every row carries an id (generated when absent from the wire).
func Decode(data []byte) (*Document, error) {
	var w wireDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&w); err != nil {
		// Wrap with %w twice so callers can match both the document-level
		// sentinel and embedded boundary errors such as schedule.ErrMaskRange.
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	mode, err := decodeCombineMode(w.CombineMode)
	if err != nil {
		return nil, err
	}

	d := &Document{
		ID:          GenerateID(),
		Name:        w.Name,
		Enabled:     w.Enabled,
		Conditions:  make([]ConditionRow, 0, len(w.Conditions)),
		CombineMode: mode,
		Actions:     make([]ActionRow, 0, len(w.Actions)),
	}

	for i, c := range w.Conditions {
		switch c.Kind {
		case ConditionEntityState:
		default:
			return nil, fmt.Errorf("%w: condition[%d] kind %q", ErrUnknownConditionKind, i, c.Kind)
		}
		c = NormalizeCondition(c)
		if c.ID == "" {
			c.ID = GenerateID()
		}
		d.Conditions = append(d.Conditions, c)
	}

	for i, a := range w.Actions {
		switch a.Kind {
		case ActionAlarmArm, ActionZigbeeLight:
		default:
			return nil, fmt.Errorf("%w: action[%d] kind %q", ErrUnknownActionKind, i, a.Kind)
		}
		a = NormalizeAction(a)
		if a.ID == "" {
			a.ID = GenerateID()
		}
		d.Actions = append(d.Actions, a)
	}

	if w.Schedule != nil {
		// The mask was already range-checked by DayMask.UnmarshalJSON; the
		// window shape still needs validating here.
		if err := w.Schedule.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		sched := *w.Schedule
		d.Schedule = &sched
	}

	return d, nil
}

// decodeCombineMode validates a wire combine mode. An absent mode defaults
// to "all"; anything else unrecognised fails the decode.
func decodeCombineMode(v string) (CombineMode, error) {
	switch CombineMode(v) {
	case CombineAll, CombineAny:
		return CombineMode(v), nil
	case "":
		return CombineAll, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCombineMode, v)
	}
}
