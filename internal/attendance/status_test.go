package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Now()
	reason := "Sick leave"

	cases := []struct {
		name   string
		record *AttendanceRecord
		want   Status
	}{
		{"no record", nil, StatusNotStarted},
		{"working", &AttendanceRecord{PunchInTime: now}, StatusWorking},
		{
			"on lunch",
			&AttendanceRecord{
				PunchInTime: now,
				LunchBreaks: []LunchBreak{{LunchStartTime: now}},
			},
			StatusOnLunch,
		},
		{
			"lunch done still working",
			&AttendanceRecord{
				PunchInTime: now,
				LunchBreaks: []LunchBreak{{LunchStartTime: now, LunchEndTime: &now}},
			},
			StatusWorking,
		},
		{
			"completed",
			&AttendanceRecord{PunchInTime: now, PunchOutTime: &now},
			StatusCompleted,
		},
		{
			"on leave",
			&AttendanceRecord{PunchInTime: now, LeaveReason: &reason},
			StatusOnLeave,
		},
		{
			"leave wins over punch out",
			&AttendanceRecord{PunchInTime: now, PunchOutTime: &now, LeaveReason: &reason},
			StatusOnLeave,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.record))
		})
	}
}
