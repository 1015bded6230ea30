package rule

import (
	"fmt"
	"sort"
	"strings"
)

// NewDocument creates an empty, enabled rule document with a fresh id.
// Condition and action sequences start empty but never nil.
func NewDocument(name string) *Document {
	return &Document{
		ID:          GenerateID(),
		Name:        name,
		Enabled:     true,
		Conditions:  []ConditionRow{},
		CombineMode: CombineAll,
		Actions:     []ActionRow{},
	}
}

// AddCondition normalises and appends a condition row, assigning a stable
// id when the row has none. Returns the row's id.
func (d *Document) AddCondition(c ConditionRow) string {
	c = NormalizeCondition(c)
	if c.ID == "" {
		c.ID = GenerateID()
	}
	d.Conditions = append(d.Conditions, c)
	return c.ID
}

// RemoveCondition deletes the condition with the given id.
func (d *Document) RemoveCondition(id string) error {
	for i, c := range d.Conditions {
		if c.ID == id {
			d.Conditions = append(d.Conditions[:i], d.Conditions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: condition %s", ErrRowNotFound, id)
}

// MoveCondition repositions the condition with the given id to index `to`,
// preserving row identity and the relative order of the other rows.
// Out-of-range targets are clamped to the sequence bounds.
func (d *Document) MoveCondition(id string, to int) error {
	from := -1
	for i, c := range d.Conditions {
		if c.ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return fmt.Errorf("%w: condition %s", ErrRowNotFound, id)
	}

	row := d.Conditions[from]
	d.Conditions = append(d.Conditions[:from], d.Conditions[from+1:]...)
	to = clamp(to, 0, len(d.Conditions))
	d.Conditions = append(d.Conditions[:to], append([]ConditionRow{row}, d.Conditions[to:]...)...)
	return nil
}

// AddAction normalises and appends an action row, assigning a stable id
// when the row has none. Returns the row's id.
func (d *Document) AddAction(a ActionRow) string {
	a = NormalizeAction(a)
	if a.ID == "" {
		a.ID = GenerateID()
	}
	d.Actions = append(d.Actions, a)
	return a.ID
}

// RemoveAction deletes the action with the given id.
func (d *Document) RemoveAction(id string) error {
	for i, a := range d.Actions {
		if a.ID == id {
			d.Actions = append(d.Actions[:i], d.Actions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: action %s", ErrRowNotFound, id)
}

// MoveAction repositions the action with the given id to index `to`.
// Out-of-range targets are clamped to the sequence bounds.
func (d *Document) MoveAction(id string, to int) error {
	from := -1
	for i, a := range d.Actions {
		if a.ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return fmt.Errorf("%w: action %s", ErrRowNotFound, id)
	}

	row := d.Actions[from]
	d.Actions = append(d.Actions[:from], d.Actions[from+1:]...)
	to = clamp(to, 0, len(d.Actions))
	d.Actions = append(d.Actions[:to], append([]ActionRow{row}, d.Actions[to:]...)...)
	return nil
}

// Validate checks the whole document: non-empty name, every condition and
// action passing variant validation, and a well-formed schedule when one is
// present. It returns the first failure found, wrapped so callers can match
// with errors.Is.
func (d *Document) Validate() error {
	if d == nil {
		return ErrInvalidDocument
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	for i, c := range d.Conditions {
		if fe := ValidateCondition(c); !fe.OK() {
			return fmt.Errorf("%w: condition[%d]: %s", ErrInvalidDocument, i, fe.summary())
		}
	}
	for i, a := range d.Actions {
		if fe := ValidateAction(a); !fe.OK() {
			return fmt.Errorf("%w: action[%d]: %s", ErrInvalidDocument, i, fe.summary())
		}
	}

	if d.Schedule != nil {
		if err := d.Schedule.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
	}

	return nil
}

// Valid reports whether the document passes Validate.
func (d *Document) Valid() bool {
	return d.Validate() == nil
}

// Copy creates a complete independent copy of the document. Conditions,
// actions and schedule are value-owned, so the copy shares nothing with
// the original.
func (d *Document) Copy() *Document {
	if d == nil {
		return nil
	}

	cpy := *d
	cpy.Conditions = append([]ConditionRow{}, d.Conditions...)
	cpy.Actions = append([]ActionRow{}, d.Actions...)
	if d.Schedule != nil {
		sched := *d.Schedule
		cpy.Schedule = &sched
	}
	return &cpy
}

// summary joins field errors into a single deterministic message for
// document-level error wrapping.
func (fe FieldErrors) summary() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	// Stable output; FieldErrors is a map.
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fe[field])
	}
	return strings.Join(parts, "; ")
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
