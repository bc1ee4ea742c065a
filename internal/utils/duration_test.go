package utils

import (
	"testing"
	"time"

	"rentnest-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEndDate(t *testing.T) {
	start := date(2025, time.January, 15)

	tests := []struct {
		name       string
		unit       domain.DurationUnit
		multiplier int
		expected   time.Time
	}{
		{"SingleDay", domain.DurationUnitDay, 1, date(2025, time.January, 16)},
		{"MultipleDays", domain.DurationUnitDay, 10, date(2025, time.January, 25)},
		{"SingleWeek", domain.DurationUnitWeek, 1, date(2025, time.January, 22)},
		{"MultipleWeeks", domain.DurationUnitWeek, 3, date(2025, time.February, 5)},
		{"SingleMonth", domain.DurationUnitMonth, 1, date(2025, time.February, 15)},
		{"YearOfMonths", domain.DurationUnitMonth, 12, date(2026, time.January, 15)},
		{"SingleYear", domain.DurationUnitYear, 1, date(2026, time.January, 15)},
		{"Test10Seconds", domain.DurationUnitTest10s, 1, start.Add(10 * time.Second)},
		{"Test10SecondsMultiplied", domain.DurationUnitTest10s, 3, start.Add(30 * time.Second)},
		{"Test30Seconds", domain.DurationUnitTest30s, 2, start.Add(60 * time.Second)},
		{"UnknownUnitFallsBackToMonths", domain.DurationUnit("fortnight"), 2, date(2025, time.March, 15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EndDate(start, tc.unit, tc.multiplier))
		})
	}
}

func TestEndDate_MonthOverflow(t *testing.T) {
	// time.AddDate normalizes Jan 31 + 1 month to Mar 2/3; the calculator
	// follows calendar arithmetic rather than clamping.
	got := EndDate(date(2025, time.January, 31), domain.DurationUnitMonth, 1)
	assert.Equal(t, date(2025, time.March, 3), got)
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, time.June, 3, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, date(2025, time.June, 3), DateOnly(ts))
}

func TestSameOrBefore(t *testing.T) {
	morning := time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.June, 3, 22, 0, 0, 0, time.UTC)

	assert.True(t, SameOrBefore(morning, evening), "same calendar day")
	assert.True(t, SameOrBefore(evening, morning), "same calendar day, reversed times")
	assert.True(t, SameOrBefore(morning, morning.AddDate(0, 0, 1)))
	assert.False(t, SameOrBefore(morning.AddDate(0, 0, 1), morning))
}
