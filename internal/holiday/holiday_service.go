package holiday

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/anas1606/attendance/internal/calendar"
	holidayerrors "github.com/anas1606/attendance/internal/holiday/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	List(ctx context.Context, fromKey, toKey string) ([]HolidayResponse, error)
	GetByID(ctx context.Context, id string) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create holiday begin tx failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByDate(ctx, date); err == nil {
		return HolidayResponse{}, holidayerrors.ErrHolidayExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return HolidayResponse{}, err
	}

	h := &Holiday{
		ID:          uuid.New(),
		Date:        date,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	if err := qtx.Create(ctx, h); err != nil {
		return HolidayResponse{}, mapInsertError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create holiday commit failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("holiday created",
		zap.String("holiday_id", h.ID.String()),
		zap.String("date", calendar.DateKey(h.Date)),
		zap.String("name", h.Name),
	)
	return mapToResponse(*h), nil
}

func (s *service) List(ctx context.Context, fromKey, toKey string) ([]HolidayResponse, error) {
	var (
		rows []Holiday
		err  error
	)

	switch {
	case fromKey == "" && toKey == "":
		rows, err = s.repo.FindAll(ctx)
	default:
		var from, to time.Time
		if from, err = calendar.ParseDate(fromKey); err != nil {
			return nil, holidayerrors.ErrInvalidDate
		}
		if to, err = calendar.ParseDate(toKey); err != nil {
			return nil, holidayerrors.ErrInvalidDate
		}
		rows, err = s.repo.FindInRange(ctx, from, to)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, len(rows))
	for i, h := range rows {
		resp[i] = mapToResponse(h)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (HolidayResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidHolidayID
	}

	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HolidayResponse{}, holidayerrors.ErrHolidayNotFound
		}
		return HolidayResponse{}, err
	}
	return mapToResponse(*h), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return holidayerrors.ErrInvalidHolidayID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return holidayerrors.ErrHolidayNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("holiday deleted", zap.String("holiday_id", id))
	return nil
}

// mapInsertError turns the unique-date violation into the domain conflict.
// Two admins can race the existence check; the index stops the second insert.
func mapInsertError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_holiday_date" {
			return holidayerrors.ErrHolidayExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_holiday_date") {
		return holidayerrors.ErrHolidayExists
	}

	return err
}
