package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidStay = errors.New("end date must be after start date")
	ErrStartInPast = errors.New("start date cannot be in the past")
)

// Stay is the reserved date range. Boundaries are inclusive for conflict
// purposes: two stays sharing an exact boundary instant conflict.
type Stay struct {
	start time.Time
	end   time.Time
}

func NewStay(start, end, now time.Time) (Stay, error) {
	if !end.After(start) {
		return Stay{}, ErrInvalidStay
	}

	if startOfDay(start).Before(startOfDay(now)) {
		return Stay{}, ErrStartInPast
	}

	return Stay{start: start, end: end}, nil
}

func ReconstructStay(start, end time.Time) Stay {
	return Stay{start: start, end: end}
}

func (s Stay) Start() time.Time {
	return s.start
}

func (s Stay) End() time.Time {
	return s.end
}

// Days is the calendar-day difference between start and end. A stay that
// begins and ends on the same calendar day yields 0, and the booking path
// prices it as such.
func (s Stay) Days() int {
	return int(startOfDay(s.end).Sub(startOfDay(s.start)) / (24 * time.Hour))
}

// Overlaps uses inclusive-boundary semantics on both ends. Back-to-back
// stays sharing a boundary instant are treated as conflicting.
func (s Stay) Overlaps(other Stay) bool {
	return !s.start.After(other.end) && !other.start.After(s.end)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
