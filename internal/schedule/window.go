package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock format constants.
const (
	minutesPerHour = 60
	hoursPerDay    = 24
	clockParts     = 2 // "HH:MM" splits into hour and minute
)

// Schedule binds a rule to a recurring weekly window: active on the masked
// days, between Start and End each day. Start and End are wall-clock times
// in "HH:MM" (24-hour) form, matching the engine's scheduling payload.
type Schedule struct {
	Mask  DayMask `json:"mask"`
	Start string  `json:"start_time"`
	End   string  `json:"end_time"`
}

// Validate checks the schedule's window. The mask needs no checking here:
// any Schedule decoded from the wire already went through NewDayMask.
//
// A window is valid when both times parse as HH:MM and start is strictly
// before end within the same day. Overnight windows (22:00-06:00) are not
// supported by the engine contract and are rejected.
func (s Schedule) Validate() error {
	start, err := ParseClock(s.Start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	end, err := ParseClock(s.End)
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}
	if start >= end {
		return fmt.Errorf("%w: %s >= %s", ErrWindowOrder, s.Start, s.End)
	}
	return nil
}

// ParseClock parses a "HH:MM" wall-clock time into minutes since midnight.
// Hours 00-23 and minutes 00-59 are accepted; anything else fails with
// ErrClockFormat.
func ParseClock(v string) (int, error) {
	parts := strings.Split(strings.TrimSpace(v), ":")
	if len(parts) != clockParts {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, v)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour >= hoursPerDay {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, v)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, v)
	}

	return hour*minutesPerHour + minute, nil
}
