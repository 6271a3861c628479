package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlk/tour-api/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// availableDays builds IsAvailable=true entries for every day in [from, to].
func availableDays(guideID uint, from, to string) []models.GuideAvailability {
	var entries []models.GuideAvailability
	for d := day(from); !d.After(day(to)); d = d.AddDate(0, 0, 1) {
		entries = append(entries, models.GuideAvailability{GuideID: guideID, Date: d, IsAvailable: true})
	}
	return entries
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2024-01-01", "2024-01-01", 1},
		{"five days inclusive", "2024-01-01", "2024-01-05", 5},
		{"end before start", "2024-01-05", "2024-01-01", 0},
		{"across month boundary", "2024-01-30", "2024-02-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(day(tt.start), day(tt.end)))
		})
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"disjoint", "2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05", false},
		{"shared single day counts", "2024-01-01", "2024-01-04", "2024-01-04", "2024-01-06", true},
		{"contained", "2024-01-01", "2024-01-10", "2024-01-03", "2024-01-05", true},
		{"identical", "2024-01-01", "2024-01-03", "2024-01-01", "2024-01-03", true},
		{"adjacent no gap", "2024-01-01", "2024-01-03", "2024-01-04", "2024-01-06", false},
		{"order independent", "2024-01-04", "2024-01-06", "2024-01-01", "2024-01-04", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(day(tt.s1), day(tt.e1), day(tt.s2), day(tt.e2)))
		})
	}
}

func TestCheckGuideRejectsOverlappingAssignment(t *testing.T) {
	// Guide is free every day 01-01 through 01-05, but already holds an
	// active assignment for 01-03..01-04. A proposal for 01-04..01-06
	// shares 01-04 and must be rejected.
	entries := availableDays(1, "2024-01-01", "2024-01-06")
	assignments := []models.GuideAssignment{
		{GuideID: 1, StartDate: day("2024-01-03"), EndDate: day("2024-01-04"), Status: models.AssignmentConfirmed},
	}

	err := CheckGuide(entries, assignments, day("2024-01-04"), day("2024-01-06"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already has an assignment")
}

func TestCheckGuideAcceptsDisjointRange(t *testing.T) {
	entries := availableDays(1, "2024-01-01", "2024-01-08")
	assignments := []models.GuideAssignment{
		{GuideID: 1, StartDate: day("2024-01-03"), EndDate: day("2024-01-04"), Status: models.AssignmentConfirmed},
	}

	err := CheckGuide(entries, assignments, day("2024-01-06"), day("2024-01-08"))
	assert.NoError(t, err)
}

func TestCheckGuideRequiresEveryDayAvailable(t *testing.T) {
	// 01-03 is missing from the availability set
	entries := append(
		availableDays(1, "2024-01-01", "2024-01-02"),
		availableDays(1, "2024-01-04", "2024-01-05")...,
	)

	err := CheckGuide(entries, nil, day("2024-01-01"), day("2024-01-05"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024-01-03")
}

func TestCheckGuideIgnoresExplicitlyUnavailableDay(t *testing.T) {
	entries := availableDays(1, "2024-01-01", "2024-01-05")
	entries = append(entries, models.GuideAvailability{GuideID: 1, Date: day("2024-01-03"), IsAvailable: false})

	// The explicit false entry marks 01-03 unavailable
	err := CheckGuide(entries, nil, day("2024-01-01"), day("2024-01-05"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024-01-03")
}

func TestCheckGuideUnavailableDayIsSticky(t *testing.T) {
	// Duplicate rows for the same day come back in no particular order;
	// a false entry must win whichever side of the true entry it lands.
	orders := map[string][]models.GuideAvailability{
		"false then true": {
			{GuideID: 1, Date: day("2024-01-03"), IsAvailable: false},
			{GuideID: 1, Date: day("2024-01-03"), IsAvailable: true},
		},
		"true then false": {
			{GuideID: 1, Date: day("2024-01-03"), IsAvailable: true},
			{GuideID: 1, Date: day("2024-01-03"), IsAvailable: false},
		},
	}

	for name, duplicates := range orders {
		t.Run(name, func(t *testing.T) {
			entries := append(availableDays(1, "2024-01-01", "2024-01-02"), duplicates...)
			entries = append(entries, availableDays(1, "2024-01-04", "2024-01-05")...)

			err := CheckGuide(entries, nil, day("2024-01-01"), day("2024-01-05"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "2024-01-03")
		})
	}
}

func TestCheckGuideFailuresAreConflictErrors(t *testing.T) {
	entries := availableDays(1, "2024-01-01", "2024-01-02")

	var conflict *ConflictError

	err := CheckGuide(entries, nil, day("2024-01-01"), day("2024-01-04"))
	require.Error(t, err)
	assert.True(t, errors.As(err, &conflict))

	assignments := []models.GuideAssignment{
		{GuideID: 1, StartDate: day("2024-01-01"), EndDate: day("2024-01-02"), Status: models.AssignmentPending},
	}
	err = CheckGuide(availableDays(1, "2024-01-01", "2024-01-02"), assignments, day("2024-01-01"), day("2024-01-02"))
	require.Error(t, err)
	assert.True(t, errors.As(err, &conflict))
}

func TestCheckGuideIgnoresInactiveAssignments(t *testing.T) {
	entries := availableDays(1, "2024-01-01", "2024-01-05")
	assignments := []models.GuideAssignment{
		{GuideID: 1, StartDate: day("2024-01-02"), EndDate: day("2024-01-03"), Status: models.AssignmentCancelled},
		{GuideID: 1, StartDate: day("2024-01-04"), EndDate: day("2024-01-05"), Status: models.AssignmentCompleted},
	}

	assert.NoError(t, CheckGuide(entries, assignments, day("2024-01-01"), day("2024-01-05")))
}

func TestCheckGuideRejectsInvertedRange(t *testing.T) {
	entries := availableDays(1, "2024-01-01", "2024-01-05")
	err := CheckGuide(entries, nil, day("2024-01-05"), day("2024-01-01"))
	require.Error(t, err)
}

func TestCheckGuideTimestampsNormalizedToDays(t *testing.T) {
	// Entries stored at midnight must match a proposal carrying a
	// time-of-day component.
	entries := availableDays(1, "2024-01-01", "2024-01-02")
	start := day("2024-01-01").Add(9 * time.Hour)
	end := day("2024-01-02").Add(17 * time.Hour)

	assert.NoError(t, CheckGuide(entries, nil, start, end))
}
