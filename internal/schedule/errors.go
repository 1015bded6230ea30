package schedule

import "errors"

// Domain errors for the schedule package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, schedule.ErrMaskRange) {
//	    // handle out-of-range mask
//	}
var (
	// ErrMaskRange is returned when a day mask is outside [0,127].
	ErrMaskRange = errors.New("schedule: day mask out of range")

	// ErrMaskFormat is returned when a wire value is not an integer at
	// all, as opposed to an integer outside the valid range.
	ErrMaskFormat = errors.New("schedule: day mask is not an integer")

	// ErrClockFormat is returned when a time of day is not HH:MM.
	ErrClockFormat = errors.New("schedule: invalid time of day")

	// ErrWindowOrder is returned when a window's start is not strictly
	// before its end within the same day.
	ErrWindowOrder = errors.New("schedule: window start must be before end")
)
