package timecard

import (
	"time"
)

// Rules are the configurable business rules applied when validating a
// submission and when summarizing a period.
type Rules struct {
	FutureGraceDays int
	WorkingDays     Workweek
	DailyHoursCap   float64
}

// DefaultRules returns the stock rules: no future submissions, Mon-Fri
// workweek, 12h daily cap.
func DefaultRules() Rules {
	return Rules{
		FutureGraceDays: 0,
		WorkingDays:     DefaultWorkweek(),
		DailyHoursCap:   12,
	}
}

// Validate checks a candidate entry against the rules and the entries
// already stored for the same employee and work date. Checks run in
// order and stop at the first failure. It is a pure pre-check: the
// database constraints remain the source of truth for duplicates and
// overlaps under concurrent submissions.
func Validate(candidate Entry, existing []Entry, rules Rules, now time.Time) error {
	latestAllowed := truncateToDay(now).AddDate(0, 0, rules.FutureGraceDays)
	if truncateToDay(candidate.WorkDate).After(latestAllowed) {
		return ErrFutureDate
	}

	if !candidate.EndTime.After(candidate.StartTime) {
		return ErrInvalidInterval
	}

	for _, other := range existing {
		if other.StartTime.Equal(candidate.StartTime) {
			return ErrDuplicateSlot
		}
	}

	for _, other := range existing {
		if candidate.Overlaps(other) {
			return ErrOverlappingEntry
		}
	}

	return nil
}

// Work dates are stored at midnight UTC, so the grace boundary is
// computed on the UTC calendar regardless of the host zone.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
