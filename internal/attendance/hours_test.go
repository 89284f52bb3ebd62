package attendance

import (
	"testing"
	"time"

	"github.com/anas1606/attendance/internal/calendar"

	"github.com/stretchr/testify/assert"
)

func mondayToFriday() WorkSchedule {
	return WorkSchedule{
		WorkingDays:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		OfficeTimeIn:  "09:00",
		OfficeTimeOut: "18:00",
	}
}

func TestDailyHours(t *testing.T) {
	s := mondayToFriday()
	hours, err := s.DailyHours()
	assert.NoError(t, err)
	assert.Equal(t, 9.0, hours)

	s.OfficeTimeIn = "09:30"
	hours, err = s.DailyHours()
	assert.NoError(t, err)
	assert.Equal(t, 8.5, hours)

	s.OfficeTimeIn = "nine"
	_, err = s.DailyHours()
	assert.Error(t, err)
}

func TestIsWorkingDay(t *testing.T) {
	s := mondayToFriday()
	assert.True(t, s.IsWorkingDay("Monday"))
	assert.False(t, s.IsWorkingDay("Sunday"))
	assert.False(t, s.IsWorkingDay("monday"))
}

func TestComputeWorkingHours(t *testing.T) {
	punchIn := time.Date(2025, time.June, 2, 9, 0, 0, 0, calendar.Zone)

	// 9h session minus a 30 minute lunch.
	punchOut := punchIn.Add(9 * time.Hour)
	thirty := 30
	hours := ComputeWorkingHours(punchIn, punchOut, []LunchBreak{{DurationMinutes: &thirty}})
	assert.Equal(t, 8.5, hours)

	// No breaks.
	hours = ComputeWorkingHours(punchIn, punchOut, nil)
	assert.Equal(t, 9.0, hours)

	// Breaks longer than the session clamp to zero.
	long := 10 * 60
	hours = ComputeWorkingHours(punchIn, punchIn.Add(time.Hour), []LunchBreak{{DurationMinutes: &long}})
	assert.Equal(t, 0.0, hours)
}

func TestLiveWorkingHours(t *testing.T) {
	punchIn := time.Date(2025, time.June, 2, 9, 0, 0, 0, calendar.Zone)

	// Working, no lunch: 4h elapsed.
	rec := &AttendanceRecord{PunchInTime: punchIn}
	assert.Equal(t, 4.0, LiveWorkingHours(rec, punchIn.Add(4*time.Hour)))

	// On lunch: the open break's elapsed time is excluded.
	lunchStart := punchIn.Add(4 * time.Hour)
	rec.LunchBreaks = []LunchBreak{{LunchStartTime: lunchStart}}
	assert.Equal(t, 4.0, LiveWorkingHours(rec, lunchStart.Add(20*time.Minute)))

	// Closed record returns the stored figure.
	punchOut := punchIn.Add(9 * time.Hour)
	stored := 8.5
	rec = &AttendanceRecord{PunchInTime: punchIn, PunchOutTime: &punchOut, WorkingHours: &stored}
	assert.Equal(t, 8.5, LiveWorkingHours(rec, punchOut.Add(2*time.Hour)))
}

func TestComputeMonthlyStatistics(t *testing.T) {
	schedule := mondayToFriday()

	worked := 8.5
	punchIn := time.Date(2025, time.June, 2, 9, 0, 0, 0, calendar.Zone)
	punchOut := punchIn.Add(9 * time.Hour)
	reason := "Family function"

	records := []AttendanceRecord{
		{
			Date:         time.Date(2025, time.June, 2, 0, 0, 0, 0, calendar.Zone),
			PunchInTime:  punchIn,
			PunchOutTime: &punchOut,
			WorkingHours: &worked,
		},
		{
			Date:        time.Date(2025, time.June, 3, 0, 0, 0, 0, calendar.Zone),
			PunchInTime: punchIn.AddDate(0, 0, 1),
			LeaveReason: &reason,
		},
		{
			// Still open: contributes to neither completed days nor totals.
			Date:        time.Date(2025, time.June, 4, 0, 0, 0, 0, calendar.Zone),
			PunchInTime: punchIn.AddDate(0, 0, 2),
		},
	}

	holidays := []time.Time{
		time.Date(2025, time.June, 16, 0, 0, 0, 0, calendar.Zone), // a Monday
	}

	stats, err := ComputeMonthlyStatistics(records, holidays, schedule, 2025, time.June)
	assert.NoError(t, err)

	assert.Equal(t, 20, stats.ExpectedWorkingDays)
	assert.Equal(t, 9.0, stats.DailyExpectedHours)
	assert.Equal(t, 180.0, stats.ExpectedTotalHours)
	assert.Equal(t, 8.5, stats.TotalHoursWorked)
	assert.Equal(t, 1, stats.CompletedDays)
	assert.Equal(t, 1, stats.LeaveDays)
	assert.Equal(t, "Remaining", stats.DifferenceLabel)
	assert.Equal(t, 171.5, stats.DifferenceHours)
}

func TestComputeMonthlyStatisticsOvertime(t *testing.T) {
	schedule := WorkSchedule{
		WorkingDays:   []string{"Monday"},
		OfficeTimeIn:  "10:00",
		OfficeTimeOut: "14:00",
	}

	worked := 30.0
	punchOut := time.Date(2025, time.June, 2, 18, 0, 0, 0, calendar.Zone)
	records := []AttendanceRecord{{
		Date:         time.Date(2025, time.June, 2, 0, 0, 0, 0, calendar.Zone),
		PunchInTime:  punchOut.Add(-9 * time.Hour),
		PunchOutTime: &punchOut,
		WorkingHours: &worked,
	}}

	// June 2025 has five Mondays, 4h each.
	stats, err := ComputeMonthlyStatistics(records, nil, schedule, 2025, time.June)
	assert.NoError(t, err)
	assert.Equal(t, 5, stats.ExpectedWorkingDays)
	assert.Equal(t, 20.0, stats.ExpectedTotalHours)
	assert.Equal(t, "Overtime", stats.DifferenceLabel)
	assert.Equal(t, 10.0, stats.DifferenceHours)
}

func TestComputeMonthlyStatisticsNoWorkingDays(t *testing.T) {
	schedule := WorkSchedule{
		WorkingDays:   []string{},
		OfficeTimeIn:  "09:00",
		OfficeTimeOut: "18:00",
	}

	stats, err := ComputeMonthlyStatistics(nil, nil, schedule, 2025, time.June)
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.ExpectedWorkingDays)
	assert.Equal(t, 0.0, stats.ExpectedTotalHours)
	assert.Equal(t, 0.0, stats.TotalHoursWorked)
	assert.Equal(t, "Overtime", stats.DifferenceLabel)
	assert.Equal(t, 0.0, stats.DifferenceHours)
}
