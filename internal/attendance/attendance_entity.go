package attendance

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is one logical record per (user, civil date). The
// composite unique index closes the duplicate punch-in race at the store:
// two racing requests can both pass the existence check, but only one insert
// commits.
//
// A record is a leave record iff LeaveReason is set; worked and leave days
// are distinct variants rather than an encoded text prefix.
type AttendanceRecord struct {
	ID           uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID    `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_attendance_user_date"`
	Date         time.Time    `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_user_date"`
	PunchInTime  time.Time    `gorm:"column:punch_in_time;type:timestamptz;not null"`
	PunchOutTime *time.Time   `gorm:"column:punch_out_time;type:timestamptz"`
	PunchInLat   *float64     `gorm:"column:punch_in_lat"`
	PunchInLng   *float64     `gorm:"column:punch_in_lng"`
	PunchOutLat  *float64     `gorm:"column:punch_out_lat"`
	PunchOutLng  *float64     `gorm:"column:punch_out_lng"`
	WorkingHours *float64     `gorm:"column:working_hours"`
	WorkDone     *string      `gorm:"column:work_done;type:text"`
	LeaveReason  *string      `gorm:"column:leave_reason;type:text"`
	CreatedAt    time.Time    `gorm:"column:created_at"`
	UpdatedAt    time.Time    `gorm:"column:updated_at"`
	LunchBreaks  []LunchBreak `gorm:"foreignKey:AttendanceRecordID;constraint:OnDelete:CASCADE"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// IsLeave reports whether the record marks a leave day.
func (r *AttendanceRecord) IsLeave() bool {
	return r.LeaveReason != nil
}

// IsClosed reports whether the working session has been punched out.
func (r *AttendanceRecord) IsClosed() bool {
	return r.PunchOutTime != nil
}

// OpenLunchBreak returns the break without an end time, if any. The service
// guarantees at most one.
func (r *AttendanceRecord) OpenLunchBreak() *LunchBreak {
	for i := range r.LunchBreaks {
		if r.LunchBreaks[i].LunchEndTime == nil {
			return &r.LunchBreaks[i]
		}
	}
	return nil
}

type LunchBreak struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AttendanceRecordID uuid.UUID  `gorm:"column:attendance_record_id;type:uuid;not null;index"`
	UserID             uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	LunchStartTime     time.Time  `gorm:"column:lunch_start_time;type:timestamptz;not null"`
	LunchEndTime       *time.Time `gorm:"column:lunch_end_time;type:timestamptz"`
	LunchStartLat      *float64   `gorm:"column:lunch_start_lat"`
	LunchStartLng      *float64   `gorm:"column:lunch_start_lng"`
	LunchEndLat        *float64   `gorm:"column:lunch_end_lat"`
	LunchEndLng        *float64   `gorm:"column:lunch_end_lng"`
	DurationMinutes    *int       `gorm:"column:duration_minutes"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (LunchBreak) TableName() string {
	return "lunch_breaks"
}
