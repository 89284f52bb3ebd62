package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	attendanceerrors "github.com/anas1606/attendance/internal/attendance/errors"
	"github.com/anas1606/attendance/internal/calendar"
	"github.com/anas1606/attendance/internal/events"
	"github.com/anas1606/attendance/internal/holiday"
	"github.com/anas1606/attendance/internal/messaging/kafka"
	"github.com/anas1606/attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const minWorkSummaryLen = 10

// ScheduleSource yields the working-day schedule of a staff member. The staff
// package implements it; declared here so this package stays import-cycle
// free.
type ScheduleSource interface {
	ScheduleForUser(ctx context.Context, userID string) (WorkSchedule, error)
}

type Service interface {
	PunchIn(ctx context.Context, userID string, req PunchInRequest) (AttendanceResponse, error)
	LunchStart(ctx context.Context, userID string, req LunchRequest) (LunchBreakResponse, error)
	LunchEnd(ctx context.Context, userID string, req LunchRequest) (LunchBreakResponse, error)
	PunchOut(ctx context.Context, userID string, req PunchOutRequest) (AttendanceResponse, error)
	MarkLeave(ctx context.Context, userID string, req MarkLeaveRequest) (MarkLeaveResponse, error)
	MonthAttendance(ctx context.Context, userID, monthKey string) (MonthAttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	schedules ScheduleSource
	holidays  holiday.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	schedules ScheduleSource,
	holidays holiday.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		schedules: schedules,
		holidays:  holidays,
		outbox:    outbox,
		logger:    l,
		now:       calendar.Now,
	}
}

// NewServiceWithClock pins "now" for tests.
func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	schedules ScheduleSource,
	holidays holiday.Repository,
	outbox kafka.OutboxRepository,
	now func() time.Time,
) Service {
	s := NewService(db, repo, schedules, holidays, outbox).(*service)
	s.now = now
	return s
}

func (s *service) PunchIn(ctx context.Context, userID string, req PunchInRequest) (AttendanceResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}
	if req.Latitude == nil || req.Longitude == nil {
		return AttendanceResponse{}, attendanceerrors.ErrMissingLocation
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("punch in begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	schedule, err := s.schedules.ScheduleForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrStaffProfileNotFound
		}
		return AttendanceResponse{}, err
	}

	now := s.now()
	today := calendar.DateOf(now)
	dayName := calendar.DayName(now)

	if !schedule.IsWorkingDay(dayName) {
		s.logger.Warn("punch in on non-working day",
			zap.String("user_id", userID),
			zap.String("day", dayName),
		)
		return AttendanceResponse{}, attendanceerrors.NotWorkingDay(dayName, schedule.WorkingDays)
	}

	if h, err := s.holidays.FindByDate(ctx, today); err == nil {
		return AttendanceResponse{}, attendanceerrors.IsHoliday(h.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	existing, err := qtx.FindByUserAndDate(ctx, userID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil {
		switch DeriveStatus(existing) {
		case StatusOnLeave:
			return AttendanceResponse{}, attendanceerrors.ErrOnLeaveToday
		case StatusCompleted:
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCompleted
		default:
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyPunchedIn
		}
	}

	rec := &AttendanceRecord{
		ID:          uuid.New(),
		UserID:      userUUID,
		Date:        today,
		PunchInTime: now,
		PunchInLat:  req.Latitude,
		PunchInLng:  req.Longitude,
	}

	if err := qtx.Create(ctx, rec); err != nil {
		return AttendanceResponse{}, mapInsertError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("punch in commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("punch in recorded",
		zap.String("attendance_id", rec.ID.String()),
		zap.String("user_id", userID),
		zap.String("date", calendar.DateKey(today)),
	)
	return MapToResponse(*rec), nil
}

func (s *service) LunchStart(ctx context.Context, userID string, req LunchRequest) (LunchBreakResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return LunchBreakResponse{}, attendanceerrors.ErrInvalidUserID
	}
	if req.Latitude == nil || req.Longitude == nil {
		return LunchBreakResponse{}, attendanceerrors.ErrMissingLocation
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LunchBreakResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()

	rec, err := s.openRecordForToday(ctx, qtx, userID, now)
	if err != nil {
		return LunchBreakResponse{}, err
	}
	if rec.OpenLunchBreak() != nil {
		return LunchBreakResponse{}, attendanceerrors.ErrLunchAlreadyActive
	}

	lb := &LunchBreak{
		ID:                 uuid.New(),
		AttendanceRecordID: rec.ID,
		UserID:             userUUID,
		LunchStartTime:     now,
		LunchStartLat:      req.Latitude,
		LunchStartLng:      req.Longitude,
	}

	if err := qtx.CreateLunchBreak(ctx, lb); err != nil {
		return LunchBreakResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LunchBreakResponse{}, err
	}

	s.logger.Info("lunch break started",
		zap.String("lunch_break_id", lb.ID.String()),
		zap.String("user_id", userID),
	)
	return mapLunchToResponse(*lb), nil
}

func (s *service) LunchEnd(ctx context.Context, userID string, req LunchRequest) (LunchBreakResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return LunchBreakResponse{}, attendanceerrors.ErrInvalidUserID
	}
	if req.Latitude == nil || req.Longitude == nil {
		return LunchBreakResponse{}, attendanceerrors.ErrMissingLocation
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LunchBreakResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()

	rec, err := s.openRecordForToday(ctx, qtx, userID, now)
	if err != nil {
		return LunchBreakResponse{}, err
	}

	lb := rec.OpenLunchBreak()
	if lb == nil {
		return LunchBreakResponse{}, attendanceerrors.ErrNoActiveLunch
	}

	duration := int(now.Sub(lb.LunchStartTime).Minutes())
	lb.LunchEndTime = &now
	lb.LunchEndLat = req.Latitude
	lb.LunchEndLng = req.Longitude
	lb.DurationMinutes = &duration

	if err := qtx.UpdateLunchBreak(ctx, lb); err != nil {
		return LunchBreakResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LunchBreakResponse{}, err
	}

	s.logger.Info("lunch break ended",
		zap.String("lunch_break_id", lb.ID.String()),
		zap.String("user_id", userID),
		zap.Int("duration_minutes", duration),
	)
	return mapLunchToResponse(*lb), nil
}

func (s *service) PunchOut(ctx context.Context, userID string, req PunchOutRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}
	if req.Latitude == nil || req.Longitude == nil {
		return AttendanceResponse{}, attendanceerrors.ErrMissingLocation
	}
	workDone := strings.TrimSpace(req.WorkDone)
	if len(workDone) < minWorkSummaryLen {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidWorkSummary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()

	rec, err := s.openRecordForToday(ctx, qtx, userID, now)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if rec.OpenLunchBreak() != nil {
		return AttendanceResponse{}, attendanceerrors.ErrLunchStillActive
	}

	hours := ComputeWorkingHours(rec.PunchInTime, now, rec.LunchBreaks)
	rec.PunchOutTime = &now
	rec.PunchOutLat = req.Latitude
	rec.PunchOutLng = req.Longitude
	rec.WorkingHours = &hours
	rec.WorkDone = &workDone

	if err := qtx.Update(ctx, rec); err != nil {
		return AttendanceResponse{}, err
	}

	if err := s.emitCompleted(ctx, tx, rec, now); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("punch out recorded",
		zap.String("attendance_id", rec.ID.String()),
		zap.String("user_id", userID),
		zap.Float64("working_hours", hours),
	)
	return MapToResponse(*rec), nil
}

func (s *service) MarkLeave(ctx context.Context, userID string, req MarkLeaveRequest) (MarkLeaveResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return MarkLeaveResponse{}, attendanceerrors.ErrInvalidUserID
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return MarkLeaveResponse{}, attendanceerrors.ErrEmptyReason
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MarkLeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := calendar.DateOf(now)

	_, err = qtx.FindByUserAndDate(ctx, userID, today)
	if err == nil {
		return MarkLeaveResponse{}, attendanceerrors.ErrAlreadyHasRecord
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return MarkLeaveResponse{}, err
	}

	zero := 0.0
	rec := &AttendanceRecord{
		ID:           uuid.New(),
		UserID:       userUUID,
		Date:         today,
		PunchInTime:  now,
		PunchOutTime: &now,
		WorkingHours: &zero,
		LeaveReason:  &reason,
	}

	if err := qtx.Create(ctx, rec); err != nil {
		if mapped := mapInsertError(err); mapped == attendanceerrors.ErrAlreadyPunchedIn {
			return MarkLeaveResponse{}, attendanceerrors.ErrAlreadyHasRecord
		}
		return MarkLeaveResponse{}, err
	}

	if err := s.emitLeaveMarked(ctx, tx, rec, reason, now); err != nil {
		return MarkLeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return MarkLeaveResponse{}, err
	}

	s.logger.Info("leave marked",
		zap.String("attendance_id", rec.ID.String()),
		zap.String("user_id", userID),
		zap.String("date", calendar.DateKey(today)),
	)
	return MarkLeaveResponse{
		Attendance: MapToResponse(*rec),
		Message:    "Marked as on leave for today",
	}, nil
}

func (s *service) MonthAttendance(ctx context.Context, userID, monthKey string) (MonthAttendanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return MonthAttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}

	now := s.now()
	year, month := now.Year(), now.Month()
	if monthKey != "" {
		var err error
		year, month, err = calendar.ParseMonth(monthKey)
		if err != nil {
			return MonthAttendanceResponse{}, attendanceerrors.ErrInvalidMonth
		}
	}

	records, err := s.repo.FindByUserAndRange(ctx, userID,
		calendar.StartOfMonth(year, month), calendar.EndOfMonth(year, month))
	if err != nil {
		return MonthAttendanceResponse{}, err
	}

	resp := MonthAttendanceResponse{
		AttendanceRecords: make([]AttendanceResponse, 0, len(records)),
	}
	for _, rec := range records {
		r := MapToResponse(rec)
		if !rec.IsClosed() {
			live := LiveWorkingHours(&rec, now)
			r.LiveWorkingHours = &live
		}
		resp.AttendanceRecords = append(resp.AttendanceRecords, r)
	}

	todayRec, err := s.repo.FindByUserAndDate(ctx, userID, calendar.DateOf(now))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return MonthAttendanceResponse{}, err
	}

	resp.TodayStatus = TodayStatus{Status: string(DeriveStatus(todayRec))}
	if todayRec != nil && err == nil {
		r := MapToResponse(*todayRec)
		if !todayRec.IsClosed() {
			live := LiveWorkingHours(todayRec, now)
			r.LiveWorkingHours = &live
		}
		resp.TodayStatus.Record = &r
		if open := todayRec.OpenLunchBreak(); open != nil {
			lb := mapLunchToResponse(*open)
			resp.TodayStatus.ActiveLunchBreak = &lb
		}
	}

	return resp, nil
}

// openRecordForToday loads today's record and rejects when there is nothing
// to act on: no record, an already-closed day, or a leave day.
func (s *service) openRecordForToday(ctx context.Context, qtx Repository, userID string, now time.Time) (*AttendanceRecord, error) {
	rec, err := qtx.FindByUserAndDate(ctx, userID, calendar.DateOf(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrNoActiveAttendance
		}
		return nil, err
	}
	if rec.IsLeave() || rec.IsClosed() {
		return nil, attendanceerrors.ErrNoActiveAttendance
	}
	return rec, nil
}

func (s *service) emitCompleted(ctx context.Context, tx *sql.Tx, rec *AttendanceRecord, now time.Time) error {
	payload, err := json.Marshal(events.AttendanceCompletedEvent{
		EventType:    events.TypeAttendanceCompleted,
		AttendanceID: rec.ID.String(),
		UserID:       rec.UserID.String(),
		Date:         calendar.DateKey(rec.Date),
		WorkingHours: *rec.WorkingHours,
		OccurredAt:   now,
	})
	if err != nil {
		return err
	}
	return s.enqueueOutbox(ctx, tx, rec, events.TypeAttendanceCompleted, payload)
}

func (s *service) emitLeaveMarked(ctx context.Context, tx *sql.Tx, rec *AttendanceRecord, reason string, now time.Time) error {
	payload, err := json.Marshal(events.LeaveMarkedEvent{
		EventType:    events.TypeLeaveMarked,
		AttendanceID: rec.ID.String(),
		UserID:       rec.UserID.String(),
		Date:         calendar.DateKey(rec.Date),
		Reason:       reason,
		OccurredAt:   now,
	})
	if err != nil {
		return err
	}
	return s.enqueueOutbox(ctx, tx, rec, events.TypeLeaveMarked, payload)
}

func (s *service) enqueueOutbox(ctx context.Context, tx *sql.Tx, rec *AttendanceRecord, eventType string, payload []byte) error {
	if s.outbox == nil {
		return nil
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "attendance",
		AggregateID:   rec.ID.String(),
		EventType:     eventType,
		Topic:         events.AttendanceTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
