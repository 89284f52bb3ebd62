package attendanceerrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/anas1606/attendance/internal/shared/apperror"
)

var (
	ErrMissingLocation = apperror.New(
		apperror.CodeInvalidInput,
		"Location is required",
		http.StatusBadRequest,
	)
	ErrStaffProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Staff profile not found",
		http.StatusNotFound,
	)
	ErrAlreadyPunchedIn = apperror.New(
		apperror.CodeInvalidState,
		"Already punched in today",
		http.StatusBadRequest,
	)
	ErrAlreadyCompleted = apperror.New(
		apperror.CodeInvalidState,
		"Attendance already completed for today",
		http.StatusBadRequest,
	)
	ErrOnLeaveToday = apperror.New(
		apperror.CodeInvalidState,
		"You are marked on leave today",
		http.StatusBadRequest,
	)
	ErrNoActiveAttendance = apperror.New(
		apperror.CodeInvalidState,
		"No active punch-in found for today",
		http.StatusBadRequest,
	)
	ErrLunchAlreadyActive = apperror.New(
		apperror.CodeInvalidState,
		"Lunch break already started",
		http.StatusBadRequest,
	)
	ErrNoActiveLunch = apperror.New(
		apperror.CodeInvalidState,
		"No active lunch break found",
		http.StatusBadRequest,
	)
	ErrLunchStillActive = apperror.New(
		apperror.CodeInvalidState,
		"Please end lunch break before punching out",
		http.StatusBadRequest,
	)
	ErrInvalidWorkSummary = apperror.New(
		apperror.CodeInvalidInput,
		"Please provide a valid work summary (minimum 10 characters)",
		http.StatusBadRequest,
	)
	ErrAlreadyHasRecord = apperror.New(
		apperror.CodeInvalidState,
		"You already have an attendance record for today. Cannot mark as leave.",
		http.StatusBadRequest,
	)
	ErrEmptyReason = apperror.New(
		apperror.CodeInvalidInput,
		"Leave reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
)

// NotWorkingDay tells the staff member which days they are expected to work.
func NotWorkingDay(dayName string, workingDays []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("Today is %s. You can only punch in on your working days: %s",
			dayName, strings.Join(workingDays, ", ")),
		http.StatusBadRequest,
	)
}

// IsHoliday carries the holiday name so the client can show it verbatim.
func IsHoliday(name string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("Today is a holiday: %s. No attendance required.", name),
		http.StatusBadRequest,
	)
}
