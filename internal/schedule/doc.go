// Package schedule provides day-of-week scheduling primitives for Gray Logic Sentry.
//
// A rule's schedule combines a DayMask (which weekdays it is active) with a
// TimeWindow (the daily time range it is active). Both are immutable value
// types: a schedule is always replaced wholesale, never partially mutated.
//
// # Day Mask Encoding
//
// The wire representation is a single integer 0-127. Bit i (0=Monday ...
// 6=Sunday) set means "active that day". This encoding is shared verbatim
// with the server-side rule engine; the codec here is the single source of
// truth for both display and round-trip persistence.
//
// Masks arriving from outside the process (wire, storage, config) must pass
// through NewDayMask, which rejects values outside [0,127] rather than
// silently truncating high bits.
//
// # Usage
//
//	mask := schedule.FromSet([]schedule.Day{schedule.Monday, schedule.Friday})
//	fmt.Println(mask.Format()) // "Mon, Fri"
//
//	sched := schedule.Schedule{Mask: mask, Start: "08:30", End: "17:00"}
//	if err := sched.Validate(); err != nil {
//	    // start/end malformed or out of order
//	}
package schedule
