package attendance

import "time"

type PunchInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type LunchRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type PunchOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	WorkDone  string   `json:"work_done"`
}

type MarkLeaveRequest struct {
	Reason string `json:"reason"`
}

type LunchBreakResponse struct {
	ID                 string   `json:"id"`
	AttendanceRecordID string   `json:"attendance_record_id"`
	LunchStartTime     string   `json:"lunch_start_time"`
	LunchEndTime       *string  `json:"lunch_end_time,omitempty"`
	LunchStartLat      *float64 `json:"lunch_start_lat,omitempty"`
	LunchStartLng      *float64 `json:"lunch_start_lng,omitempty"`
	LunchEndLat        *float64 `json:"lunch_end_lat,omitempty"`
	LunchEndLng        *float64 `json:"lunch_end_lng,omitempty"`
	DurationMinutes    *int     `json:"duration_minutes,omitempty"`
}

type AttendanceResponse struct {
	ID               string               `json:"id"`
	UserID           string               `json:"user_id"`
	Date             string               `json:"date"`
	Status           string               `json:"status"`
	PunchInTime      string               `json:"punch_in_time"`
	PunchOutTime     *string              `json:"punch_out_time,omitempty"`
	PunchInLat       *float64             `json:"punch_in_lat,omitempty"`
	PunchInLng       *float64             `json:"punch_in_lng,omitempty"`
	PunchOutLat      *float64             `json:"punch_out_lat,omitempty"`
	PunchOutLng      *float64             `json:"punch_out_lng,omitempty"`
	WorkingHours     *float64             `json:"working_hours,omitempty"`
	LiveWorkingHours *float64             `json:"live_working_hours,omitempty"`
	WorkDone         *string              `json:"work_done,omitempty"`
	LeaveReason      *string              `json:"leave_reason,omitempty"`
	LunchBreaks      []LunchBreakResponse `json:"lunch_breaks,omitempty"`
}

type TodayStatus struct {
	Status           string              `json:"status"`
	Record           *AttendanceResponse `json:"record,omitempty"`
	ActiveLunchBreak *LunchBreakResponse `json:"active_lunch_break,omitempty"`
}

type MonthAttendanceResponse struct {
	AttendanceRecords []AttendanceResponse `json:"attendance_records"`
	TodayStatus       TodayStatus          `json:"today_status"`
}

type MarkLeaveResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	Message    string             `json:"message"`
}

func mapLunchToResponse(lb LunchBreak) LunchBreakResponse {
	resp := LunchBreakResponse{
		ID:                 lb.ID.String(),
		AttendanceRecordID: lb.AttendanceRecordID.String(),
		LunchStartTime:     lb.LunchStartTime.Format(time.RFC3339),
		LunchStartLat:      lb.LunchStartLat,
		LunchStartLng:      lb.LunchStartLng,
		LunchEndLat:        lb.LunchEndLat,
		LunchEndLng:        lb.LunchEndLng,
		DurationMinutes:    lb.DurationMinutes,
	}
	if lb.LunchEndTime != nil {
		v := lb.LunchEndTime.Format(time.RFC3339)
		resp.LunchEndTime = &v
	}
	return resp
}

func MapToResponse(rec AttendanceRecord) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           rec.ID.String(),
		UserID:       rec.UserID.String(),
		Date:         rec.Date.Format("2006-01-02"),
		Status:       string(DeriveStatus(&rec)),
		PunchInTime:  rec.PunchInTime.Format(time.RFC3339),
		PunchInLat:   rec.PunchInLat,
		PunchInLng:   rec.PunchInLng,
		PunchOutLat:  rec.PunchOutLat,
		PunchOutLng:  rec.PunchOutLng,
		WorkingHours: rec.WorkingHours,
		WorkDone:     rec.WorkDone,
		LeaveReason:  rec.LeaveReason,
	}
	if rec.PunchOutTime != nil {
		v := rec.PunchOutTime.Format(time.RFC3339)
		resp.PunchOutTime = &v
	}
	for _, lb := range rec.LunchBreaks {
		resp.LunchBreaks = append(resp.LunchBreaks, mapLunchToResponse(lb))
	}
	return resp
}
