// Package availability decides whether a guide can take a proposed date
// range, given the guide's per-day availability entries and their existing
// assignments. All checks work on whole calendar days.
package availability

import (
	"fmt"
	"time"

	"github.com/wanderlk/tour-api/models"
)

// ConflictError reports why a guide cannot take a date range. Callers
// distinguish it from persistence failures with errors.As.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// DateOnly truncates t to midnight UTC so two timestamps on the same
// calendar day compare equal.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days in [start, end],
// inclusive of both endpoints. Returns 0 when end is before start.
func DaysBetween(start, end time.Time) int {
	s, e := DateOnly(start), DateOnly(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// RangesOverlap reports whether [s1, e1] and [s2, e2] intersect.
// Bounds are inclusive: a single shared day counts as an overlap.
func RangesOverlap(s1, e1, s2, e2 time.Time) bool {
	s1, e1 = DateOnly(s1), DateOnly(e1)
	s2, e2 = DateOnly(s2), DateOnly(e2)
	return !s1.After(e2) && !s2.After(e1)
}

// CheckGuide walks every calendar day in [start, end] and requires a
// matching IsAvailable entry for each, then rejects the range if any
// active assignment intersects it. Cancelled and completed assignments
// do not block. Every failure is a *ConflictError.
func CheckGuide(entries []models.GuideAvailability, assignments []models.GuideAssignment, start, end time.Time) error {
	s, e := DateOnly(start), DateOnly(end)
	if e.Before(s) {
		return &ConflictError{Reason: fmt.Sprintf("end date %s is before start date %s",
			e.Format("2006-01-02"), s.Format("2006-01-02"))}
	}

	// An unavailable mark is sticky: if duplicate rows exist for a day,
	// any IsAvailable=false entry wins regardless of row order.
	available := make(map[time.Time]bool, len(entries))
	for _, entry := range entries {
		d := DateOnly(entry.Date)
		if prev, seen := available[d]; seen && !prev {
			continue
		}
		available[d] = entry.IsAvailable
	}

	for day := s; !day.After(e); day = day.AddDate(0, 0, 1) {
		if !available[day] {
			return &ConflictError{Reason: fmt.Sprintf("guide is not available on %s", day.Format("2006-01-02"))}
		}
	}

	for _, assignment := range assignments {
		if !assignment.IsActive() {
			continue
		}
		if RangesOverlap(s, e, assignment.StartDate, assignment.EndDate) {
			return &ConflictError{Reason: fmt.Sprintf("guide already has an assignment from %s to %s",
				DateOnly(assignment.StartDate).Format("2006-01-02"),
				DateOnly(assignment.EndDate).Format("2006-01-02"))}
		}
	}

	return nil
}
