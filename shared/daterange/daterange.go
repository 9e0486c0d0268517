// Package daterange implements calendar-day interval arithmetic for stays
// and reporting windows.
//
// Two different interval conventions coexist on purpose. Stay conflicts use
// half-open semantics so that one guest's check-out day can be another
// guest's check-in day. Reporting uses closed semantics where both endpoint
// days count as occupied.
package daterange

import "time"

// Range is a pair of calendar days. All functions normalize their inputs to
// midnight UTC, so values carrying a wall-clock time compare by day only.
type Range struct {
	Start time.Time
	End   time.Time
}

// New returns a Range over the given days.
func New(start, end time.Time) Range {
	return Range{Start: truncate(start), End: truncate(end)}
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Valid reports whether the range runs forward in time. A single-day range
// (Start == End) is valid.
func (r Range) Valid() bool {
	return !r.End.Before(r.Start)
}

// Conflicts reports whether two stays compete for the same room nights.
// Check-out day is exclusive on both sides, so a stay ending on a given day
// does not conflict with a stay starting that same day.
func Conflicts(a, b Range) bool {
	a, b = normalize(a), normalize(b)

	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Overlaps reports whether two closed day ranges share at least one
// calendar day, endpoints included.
func Overlaps(a, b Range) bool {
	a, b = normalize(a), normalize(b)

	return !a.Start.After(b.End) && !b.Start.After(a.End)
}

// OverlapDays returns the number of shared calendar days between two closed
// ranges, endpoints included, or zero when they are disjoint.
func OverlapDays(a, b Range) int {
	a, b = normalize(a), normalize(b)

	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}

	end := a.End
	if b.End.Before(end) {
		end = b.End
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}

	return days
}

// Nights returns the number of nights in a stay, the difference in days
// between check-in and check-out. A same-day range has zero nights.
func Nights(r Range) int {
	r = normalize(r)

	return int(r.End.Sub(r.Start).Hours() / 24)
}

// DaysInclusive returns the length of a closed range counting both
// endpoint days.
func DaysInclusive(r Range) int {
	return Nights(r) + 1
}

// Contains reports whether day falls inside the closed range, endpoints
// included.
func (r Range) Contains(day time.Time) bool {
	r = normalize(r)
	day = truncate(day)

	return !day.Before(r.Start) && !day.After(r.End)
}

func normalize(r Range) Range {
	return Range{Start: truncate(r.Start), End: truncate(r.End)}
}
