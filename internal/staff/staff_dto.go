package staff

import (
	"github.com/anas1606/attendance/internal/attendance"
	"github.com/anas1606/attendance/internal/holiday"
)

type StaffProfileResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Email         string   `json:"email,omitempty"`
	FullName      string   `json:"full_name"`
	Salary        float64  `json:"salary"`
	OfficeTimeIn  string   `json:"office_time_in"`
	OfficeTimeOut string   `json:"office_time_out"`
	WorkingDays   []string `json:"working_days"`
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type StaffAttendanceResponse struct {
	Staff             StaffProfileResponse            `json:"staff"`
	AttendanceRecords []attendance.AttendanceResponse `json:"attendance_records"`
	Holidays          []HolidayResponse               `json:"holidays"`
	Statistics        attendance.MonthlyStatistics    `json:"statistics"`
}

func mapProfileToResponse(p StaffProfile) StaffProfileResponse {
	resp := StaffProfileResponse{
		ID:            p.ID.String(),
		UserID:        p.UserID.String(),
		FullName:      p.FullName,
		Salary:        p.Salary,
		OfficeTimeIn:  p.OfficeTimeIn,
		OfficeTimeOut: p.OfficeTimeOut,
		WorkingDays:   p.WorkingDays,
	}
	if p.User != nil {
		resp.Email = p.User.Email
	}
	return resp
}

func mapHolidayToResponse(h holiday.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID.String(),
		Date:        h.Date.Format("2006-01-02"),
		Name:        h.Name,
		Description: h.Description,
	}
}
