package events

import "time"

const AttendanceTopic = "hr.attendance.lifecycle.v1"

const (
	TypeAttendanceCompleted = "attendance.completed"
	TypeLeaveMarked         = "attendance.leave_marked"
)

// AttendanceCompletedEvent is published when a staff member punches out.
// Downstream consumers (payroll, reporting) get the closed day figures.
type AttendanceCompletedEvent struct {
	EventType    string    `json:"event_type"`
	AttendanceID string    `json:"attendance_id"`
	UserID       string    `json:"user_id"`
	Date         string    `json:"date"`
	WorkingHours float64   `json:"working_hours"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// LeaveMarkedEvent is published when a staff member marks the day as leave.
type LeaveMarkedEvent struct {
	EventType    string    `json:"event_type"`
	AttendanceID string    `json:"attendance_id"`
	UserID       string    `json:"user_id"`
	Date         string    `json:"date"`
	Reason       string    `json:"reason"`
	OccurredAt   time.Time `json:"occurred_at"`
}
