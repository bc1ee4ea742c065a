package utils

import (
	"time"

	"rentnest-backend/internal/domain"
)

// EndDate computes the end of a rental period by adding multiplier units
// to start. Calendar units use calendar arithmetic (adding one month to
// Jan 31 lands in March, matching time.AddDate). Accelerated test units
// add seconds instead. An unknown unit falls back to month addition.
func EndDate(start time.Time, unit domain.DurationUnit, multiplier int) time.Time {
	switch unit {
	case domain.DurationUnitDay:
		return start.AddDate(0, 0, multiplier)
	case domain.DurationUnitWeek:
		return start.AddDate(0, 0, 7*multiplier)
	case domain.DurationUnitMonth:
		return start.AddDate(0, multiplier, 0)
	case domain.DurationUnitYear:
		return start.AddDate(multiplier, 0, 0)
	case domain.DurationUnitTest10s:
		return start.Add(time.Duration(10*multiplier) * time.Second)
	case domain.DurationUnitTest30s:
		return start.Add(time.Duration(30*multiplier) * time.Second)
	default:
		return start.AddDate(0, multiplier, 0)
	}
}

// DateOnly truncates t to midnight in its own location. Overlap and
// expiry comparisons are date-granularity; times of day are ignored.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameOrBefore reports whether a is on the same calendar day as b or
// earlier.
func SameOrBefore(a, b time.Time) bool {
	return !DateOnly(a).After(DateOnly(b))
}
