package attendance

import (
	"errors"
	"strings"

	attendanceerrors "github.com/anas1606/attendance/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapInsertError turns the composite uniqueness violation on (user_id, date)
// into the domain conflict. This is the losing side of a punch-in race: both
// requests passed the existence check, the index stopped the second insert.
func mapInsertError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_user_date" {
			return attendanceerrors.ErrAlreadyPunchedIn
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_user_date") {
		return attendanceerrors.ErrAlreadyPunchedIn
	}

	return err
}
