package staff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anas1606/attendance/internal/attendance"
	"github.com/anas1606/attendance/internal/calendar"
	"github.com/anas1606/attendance/internal/holiday"
	stafferrors "github.com/anas1606/attendance/internal/staff/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Closed months never change, so the admin statistics view is a good cache
// candidate; the current month gets a short TTL instead.
const (
	statsCacheTTL        = 10 * time.Minute
	statsCacheCurrentTTL = 30 * time.Second
)

type Service interface {
	GetProfile(ctx context.Context, userID string) (StaffProfileResponse, error)
	GetAllStaff(ctx context.Context) ([]StaffProfileResponse, error)
	StaffMonthlyAttendance(ctx context.Context, staffUserID, monthKey string) (StaffAttendanceResponse, error)
}

type service struct {
	repo        Repository
	attendances attendance.Repository
	holidays    holiday.Repository
	rdb         *redis.Client
	sf          *singleflight.Group
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	repo Repository,
	attendances attendance.Repository,
	holidays holiday.Repository,
	rdb *redis.Client,
) Service {
	return &service{
		repo:        repo,
		attendances: attendances,
		holidays:    holidays,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		logger:      zap.L().Named("staff.service"),
		now:         calendar.Now,
	}
}

// NewServiceWithClock is NewService with an injectable clock for tests.
func NewServiceWithClock(
	repo Repository,
	attendances attendance.Repository,
	holidays holiday.Repository,
	rdb *redis.Client,
	now func() time.Time,
) Service {
	svc := NewService(repo, attendances, holidays, rdb).(*service)
	svc.now = now
	return svc
}

func (s *service) GetProfile(ctx context.Context, userID string) (StaffProfileResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return StaffProfileResponse{}, stafferrors.ErrInvalidStaffID
	}

	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffProfileResponse{}, stafferrors.ErrProfileNotFound
		}
		return StaffProfileResponse{}, err
	}
	return mapProfileToResponse(*p), nil
}

func (s *service) GetAllStaff(ctx context.Context) ([]StaffProfileResponse, error) {
	profiles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]StaffProfileResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = mapProfileToResponse(p)
	}
	return resp, nil
}

func (s *service) StaffMonthlyAttendance(ctx context.Context, staffUserID, monthKey string) (StaffAttendanceResponse, error) {
	if _, err := uuid.Parse(staffUserID); err != nil {
		return StaffAttendanceResponse{}, stafferrors.ErrInvalidStaffID
	}

	now := s.now()
	year, month := now.Year(), now.Month()
	if monthKey != "" {
		var err error
		year, month, err = calendar.ParseMonth(monthKey)
		if err != nil {
			return StaffAttendanceResponse{}, stafferrors.ErrInvalidMonth
		}
	}

	cacheKey := fmt.Sprintf("staff:attendance:%s:%04d-%02d", staffUserID, year, month)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp StaffAttendanceResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.buildMonthlyAttendance(ctx, staffUserID, year, month)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			ttl := statsCacheTTL
			if year == now.Year() && month == now.Month() {
				ttl = statsCacheCurrentTTL
			}
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, ttl)
			}
		}

		return resp, nil
	})
	if err != nil {
		return StaffAttendanceResponse{}, err
	}

	return v.(StaffAttendanceResponse), nil
}

func (s *service) buildMonthlyAttendance(ctx context.Context, staffUserID string, year int, month time.Month) (StaffAttendanceResponse, error) {
	profile, err := s.repo.GetByUserID(ctx, staffUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffAttendanceResponse{}, stafferrors.ErrProfileNotFound
		}
		return StaffAttendanceResponse{}, err
	}

	from := calendar.StartOfMonth(year, month)
	to := calendar.EndOfMonth(year, month)

	records, err := s.attendances.FindByUserAndRange(ctx, staffUserID, from, to)
	if err != nil {
		return StaffAttendanceResponse{}, err
	}

	holidays, err := s.holidays.FindInRange(ctx, from, to)
	if err != nil {
		return StaffAttendanceResponse{}, err
	}

	holidayDates := make([]time.Time, len(holidays))
	for i, h := range holidays {
		holidayDates[i] = h.Date
	}

	schedule := attendance.WorkSchedule{
		WorkingDays:   profile.WorkingDays,
		OfficeTimeIn:  profile.OfficeTimeIn,
		OfficeTimeOut: profile.OfficeTimeOut,
	}

	stats, err := attendance.ComputeMonthlyStatistics(records, holidayDates, schedule, year, month)
	if err != nil {
		s.logger.Error("compute monthly statistics failed",
			zap.String("staff_user_id", staffUserID),
			zap.Error(err),
		)
		return StaffAttendanceResponse{}, err
	}

	resp := StaffAttendanceResponse{
		Staff:             mapProfileToResponse(*profile),
		AttendanceRecords: make([]attendance.AttendanceResponse, 0, len(records)),
		Holidays:          make([]HolidayResponse, 0, len(holidays)),
		Statistics:        stats,
	}
	for _, rec := range records {
		resp.AttendanceRecords = append(resp.AttendanceRecords, attendance.MapToResponse(rec))
	}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, mapHolidayToResponse(h))
	}

	return resp, nil
}
