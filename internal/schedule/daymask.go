package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Day is a day-of-week index: 0=Monday through 6=Sunday.
//
// This deliberately differs from time.Weekday (which starts the week on
// Sunday); the wire contract with the rule engine counts from Monday.
type Day int

// Days of the week, Monday first.
const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// daysPerWeek is the number of bits carrying meaning in a DayMask.
const daysPerWeek = 7

// dayLabels are the three-letter display labels, indexed by Day.
var dayLabels = [daysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayMask is a 7-bit weekday set. Bit i set means Day(i) is active.
//
// The zero value ("no days") is valid. Masks are immutable: derive a new
// mask with FromSet rather than flipping bits on an existing one.
type DayMask int

// Mask bounds and common values.
const (
	// NoDays is the empty mask.
	NoDays DayMask = 0

	// EveryDay has all seven day bits set.
	EveryDay DayMask = 1<<daysPerWeek - 1
)

// NewDayMask validates an integer from an external source (wire, storage,
// config) as a day mask. Values outside [0,127] are rejected, not truncated:
// a mask with bits >= 7 set indicates a corrupt or incompatible producer and
// must not be silently reinterpreted.
func NewDayMask(v int) (DayMask, error) {
	if v < int(NoDays) || v > int(EveryDay) {
		return NoDays, fmt.Errorf("%w: %d", ErrMaskRange, v)
	}
	return DayMask(v), nil
}

// FromSet builds a mask from a set of days. Duplicate days collapse
// naturally; days outside Monday..Sunday are ignored.
func FromSet(days []Day) DayMask {
	var mask DayMask
	for _, d := range days {
		if d < Monday || d > Sunday {
			continue
		}
		mask |= 1 << d
	}
	return mask
}

// Set returns the active days in Monday..Sunday order.
// Bits above Sunday are ignored on read.
func (m DayMask) Set() []Day {
	days := make([]Day, 0, daysPerWeek)
	for d := Monday; d <= Sunday; d++ {
		if m.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// Contains reports whether the given day is active in the mask.
func (m DayMask) Contains(d Day) bool {
	if d < Monday || d > Sunday {
		return false
	}
	return m&(1<<d) != 0
}

// Format renders the mask for display: "Every day" for a full mask,
// "No days" for an empty one, otherwise comma-joined three-letter labels
// in Monday..Sunday order regardless of how the mask was built.
func (m DayMask) Format() string {
	switch m & EveryDay {
	case EveryDay:
		return "Every day"
	case NoDays:
		return "No days"
	}

	labels := make([]string, 0, daysPerWeek)
	for _, d := range m.Set() {
		labels = append(labels, dayLabels[d])
	}
	return strings.Join(labels, ", ")
}

// Int returns the wire representation of the mask.
func (m DayMask) Int() int {
	return int(m)
}

// MarshalJSON encodes the mask as its wire integer.
func (m DayMask) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(m))
}

// UnmarshalJSON decodes and validates a wire integer. Non-integer values
// fail with ErrMaskFormat, integers outside [0,127] with ErrMaskRange, so
// corrupt masks are caught at the boundary either way.
func (m *DayMask) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrMaskFormat, err)
	}
	mask, err := NewDayMask(v)
	if err != nil {
		return err
	}
	*m = mask
	return nil
}
