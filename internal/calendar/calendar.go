// Package calendar is the single source of truth for "today" and month
// boundaries. The whole application is pinned to IST (UTC+05:30); the host
// machine's timezone must never leak into attendance dates.
package calendar

import (
	"fmt"
	"time"
)

// Zone is the fixed civil timezone (IST, UTC+05:30). Built from an explicit
// offset so behavior does not depend on the host tzdata.
var Zone = time.FixedZone("IST", 5*3600+30*60)

const dateLayout = "2006-01-02"

// Now returns the current instant in the fixed civil timezone.
func Now() time.Time {
	return time.Now().In(Zone)
}

// Today returns the current civil date as midnight in the fixed zone.
func Today() time.Time {
	return DateOf(Now())
}

// TodayKey returns today's civil date in YYYY-MM-DD form.
func TodayKey() string {
	return Today().Format(dateLayout)
}

// DateOf truncates an instant to its civil date in the fixed zone.
func DateOf(t time.Time) time.Time {
	y, m, d := t.In(Zone).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, Zone)
}

// DateKey returns the YYYY-MM-DD form of an instant's civil date.
func DateKey(t time.Time) string {
	return DateOf(t).Format(dateLayout)
}

// DayName returns the canonical English weekday name ("Monday", ...) of an
// instant's civil date. Staff working-day sets use these names.
func DayName(t time.Time) string {
	return t.In(Zone).Weekday().String()
}

// StartOfMonth returns the first instant of the given civil month.
func StartOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, Zone)
}

// EndOfMonth returns the last instant (23:59:59.999999999) of the given
// civil month.
func EndOfMonth(year int, month time.Month) time.Time {
	return StartOfMonth(year, month).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// DaysInMonth returns the number of calendar days in the given civil month.
func DaysInMonth(year int, month time.Month) int {
	return StartOfMonth(year, month).AddDate(0, 1, -1).Day()
}

// ParseMonth parses a "YYYY-MM" key into its year and month.
func ParseMonth(key string) (int, time.Month, error) {
	t, err := time.ParseInLocation("2006-01", key, Zone)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", key, err)
	}
	return t.Year(), t.Month(), nil
}

// ParseDate parses a "YYYY-MM-DD" key into midnight of that civil date.
func ParseDate(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, key, Zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", key, err)
	}
	return t, nil
}
