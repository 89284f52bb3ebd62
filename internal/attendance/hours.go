package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/anas1606/attendance/internal/calendar"
)

// WorkSchedule is the slice of a staff profile the aggregator needs: which
// weekdays count and the expected office hours.
type WorkSchedule struct {
	WorkingDays   []string
	OfficeTimeIn  string // "HH:MM" civil time-of-day
	OfficeTimeOut string
}

// IsWorkingDay reports whether the given canonical weekday name is part of
// the schedule.
func (s WorkSchedule) IsWorkingDay(dayName string) bool {
	for _, d := range s.WorkingDays {
		if d == dayName {
			return true
		}
	}
	return false
}

// DailyHours derives the expected hours per working day from the office
// time-of-day window.
func (s WorkSchedule) DailyHours() (float64, error) {
	in, err := parseTimeOfDay(s.OfficeTimeIn)
	if err != nil {
		return 0, fmt.Errorf("office time in: %w", err)
	}
	out, err := parseTimeOfDay(s.OfficeTimeOut)
	if err != nil {
		return 0, fmt.Errorf("office time out: %w", err)
	}
	return roundHours(out.Sub(in).Minutes() / 60), nil
}

func parseTimeOfDay(v string) (time.Time, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q, expected HH:MM", v)
	}
	return t, nil
}

// roundHours rounds to 2 decimal places, the precision working hours are
// stored and displayed with.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// ComputeWorkingHours is the close-out figure: elapsed session time net of
// closed lunch breaks, in hours. Lunch durations sum in whole minutes first.
func ComputeWorkingHours(punchIn, punchOut time.Time, breaks []LunchBreak) float64 {
	totalLunchMinutes := 0
	for _, lb := range breaks {
		if lb.DurationMinutes != nil {
			totalLunchMinutes += *lb.DurationMinutes
		}
	}

	workingMinutes := punchOut.Sub(punchIn).Minutes() - float64(totalLunchMinutes)
	if workingMinutes < 0 {
		workingMinutes = 0
	}
	return roundHours(workingMinutes / 60)
}

// LiveWorkingHours is the in-progress figure: "now" stands in for the punch
// out, and an open lunch break contributes its elapsed time so far.
func LiveWorkingHours(record *AttendanceRecord, now time.Time) float64 {
	if record.IsClosed() {
		if record.WorkingHours != nil {
			return *record.WorkingHours
		}
		return ComputeWorkingHours(record.PunchInTime, *record.PunchOutTime, record.LunchBreaks)
	}

	lunchMinutes := 0.0
	for _, lb := range record.LunchBreaks {
		if lb.DurationMinutes != nil {
			lunchMinutes += float64(*lb.DurationMinutes)
		} else if lb.LunchEndTime == nil {
			lunchMinutes += now.Sub(lb.LunchStartTime).Minutes()
		}
	}

	workingMinutes := now.Sub(record.PunchInTime).Minutes() - lunchMinutes
	if workingMinutes < 0 {
		workingMinutes = 0
	}
	return roundHours(workingMinutes / 60)
}

// MonthlyStatistics is the admin-facing monthly roll-up for one staff member.
// CompletedDays counts worked days with a punch-out only; leave days are
// reported separately.
type MonthlyStatistics struct {
	ExpectedWorkingDays int     `json:"expectedWorkingDays"`
	DailyExpectedHours  float64 `json:"dailyExpectedHours"`
	ExpectedTotalHours  float64 `json:"expectedTotalHours"`
	TotalHoursWorked    float64 `json:"totalHoursWorked"`
	CompletedDays       int     `json:"completedDays"`
	LeaveDays           int     `json:"leaveDays"`
	DifferenceHours     float64 `json:"differenceHours"`
	DifferenceLabel     string  `json:"differenceLabel"` // "Overtime" or "Remaining"
}

// ComputeMonthlyStatistics aggregates one civil month. holidayDates are the
// organization holidays falling inside the month.
func ComputeMonthlyStatistics(
	records []AttendanceRecord,
	holidayDates []time.Time,
	schedule WorkSchedule,
	year int,
	month time.Month,
) (MonthlyStatistics, error) {

	dailyHours, err := schedule.DailyHours()
	if err != nil {
		return MonthlyStatistics{}, err
	}

	holidaySet := make(map[string]bool, len(holidayDates))
	for _, h := range holidayDates {
		holidaySet[calendar.DateKey(h)] = true
	}

	expectedDays := 0
	for day := calendar.StartOfMonth(year, month); day.Month() == month; day = day.AddDate(0, 0, 1) {
		if schedule.IsWorkingDay(calendar.DayName(day)) && !holidaySet[calendar.DateKey(day)] {
			expectedDays++
		}
	}

	stats := MonthlyStatistics{
		ExpectedWorkingDays: expectedDays,
		DailyExpectedHours:  dailyHours,
		ExpectedTotalHours:  roundHours(float64(expectedDays) * dailyHours),
	}

	for i := range records {
		rec := &records[i]
		if rec.IsLeave() {
			stats.LeaveDays++
			continue
		}
		if rec.IsClosed() {
			stats.CompletedDays++
			if rec.WorkingHours != nil {
				stats.TotalHoursWorked += *rec.WorkingHours
			}
		}
	}
	stats.TotalHoursWorked = roundHours(stats.TotalHoursWorked)

	diff := stats.TotalHoursWorked - stats.ExpectedTotalHours
	if diff >= 0 {
		stats.DifferenceLabel = "Overtime"
	} else {
		stats.DifferenceLabel = "Remaining"
	}
	stats.DifferenceHours = roundHours(math.Abs(diff))

	return stats, nil
}
