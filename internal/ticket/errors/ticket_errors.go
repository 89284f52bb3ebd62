package ticketerrors

import (
	"fmt"
	"net/http"

	"github.com/anas1606/attendance/internal/shared/apperror"
)

var (
	ErrTicketNotFound = apperror.New(
		apperror.CodeNotFound,
		"Ticket not found",
		http.StatusNotFound,
	)
	ErrNotParticipant = apperror.New(
		apperror.CodeForbidden,
		"You are not a participant of this ticket",
		http.StatusForbidden,
	)
	ErrNotAssignee = apperror.New(
		apperror.CodeForbidden,
		"Only the assignee can change the ticket status",
		http.StatusForbidden,
	)
	ErrAssigneeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Assigned user not found",
		http.StatusBadRequest,
	)
	ErrEmptyComment = apperror.New(
		apperror.CodeInvalidInput,
		"Comment body is required",
		http.StatusBadRequest,
	)
	ErrInvalidTicketID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid ticket id",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
)

// InvalidPriority names the allowed values so clients can self-correct.
func InvalidPriority(got string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("invalid priority %q, expected one of LOW, MEDIUM, HIGH", got),
		http.StatusBadRequest,
	)
}

func InvalidStatus(got string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("invalid status %q, expected one of OPEN, IN_PROGRESS, ON_HOLD, COMPLETED", got),
		http.StatusBadRequest,
	)
}
