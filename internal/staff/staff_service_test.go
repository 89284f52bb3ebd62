package staff

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/anas1606/attendance/internal/attendance"
	"github.com/anas1606/attendance/internal/calendar"
	"github.com/anas1606/attendance/internal/holiday"
	stafferrors "github.com/anas1606/attendance/internal/staff/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeStaffRepo struct {
	profiles map[string]*StaffProfile
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{profiles: make(map[string]*StaffProfile)}
}

func (f *fakeStaffRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeStaffRepo) GetByUserID(ctx context.Context, userID string) (*StaffProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeStaffRepo) FindAll(ctx context.Context) ([]StaffProfile, error) {
	out := make([]StaffProfile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStaffRepo) ScheduleForUser(ctx context.Context, userID string) (attendance.WorkSchedule, error) {
	p, err := f.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.WorkSchedule{}, err
	}
	return attendance.WorkSchedule{
		WorkingDays:   p.WorkingDays,
		OfficeTimeIn:  p.OfficeTimeIn,
		OfficeTimeOut: p.OfficeTimeOut,
	}, nil
}

type fakeAttendanceRepo struct {
	records []attendance.AttendanceRecord
}

func (f *fakeAttendanceRepo) WithTx(tx *sql.Tx) attendance.Repository { return f }

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec *attendance.AttendanceRecord) error {
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec *attendance.AttendanceRecord) error {
	return nil
}

func (f *fakeAttendanceRepo) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.AttendanceRecord, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) FindByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.UserID.String() == userID && !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CreateLunchBreak(ctx context.Context, lb *attendance.LunchBreak) error {
	return nil
}

func (f *fakeAttendanceRepo) UpdateLunchBreak(ctx context.Context, lb *attendance.LunchBreak) error {
	return nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) WithTx(tx *sql.Tx) holiday.Repository { return f }

func (f *fakeHolidayRepo) Create(ctx context.Context, h *holiday.Holiday) error {
	f.holidays = append(f.holidays, *h)
	return nil
}

func (f *fakeHolidayRepo) FindAll(ctx context.Context) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeHolidayRepo) FindByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHolidayRepo) FindByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	for i := range f.holidays {
		if calendar.DateKey(f.holidays[i].Date) == calendar.DateKey(date) {
			return &f.holidays[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHolidayRepo) FindInRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error { return nil }

func weekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
}

func seedProfile(repo *fakeStaffRepo) *StaffProfile {
	p := &StaffProfile{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		FullName:      "Asha Verma",
		Salary:        50000,
		OfficeTimeIn:  "09:00",
		OfficeTimeOut: "18:00",
		WorkingDays:   weekdays(),
	}
	repo.profiles[p.UserID.String()] = p
	return p
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, calendar.Zone)
	}
}

func TestGetProfile(t *testing.T) {
	repo := newFakeStaffRepo()
	p := seedProfile(repo)

	svc := NewService(repo, &fakeAttendanceRepo{}, &fakeHolidayRepo{}, nil)

	resp, err := svc.GetProfile(context.Background(), p.UserID.String())
	assert.NoError(t, err)
	assert.Equal(t, p.ID.String(), resp.ID)
	assert.Equal(t, "09:00", resp.OfficeTimeIn)
	assert.Equal(t, weekdays(), resp.WorkingDays)
}

func TestGetProfileInvalidID(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), &fakeAttendanceRepo{}, &fakeHolidayRepo{}, nil)

	_, err := svc.GetProfile(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, stafferrors.ErrInvalidStaffID)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), &fakeAttendanceRepo{}, &fakeHolidayRepo{}, nil)

	_, err := svc.GetProfile(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, stafferrors.ErrProfileNotFound)
}

func TestGetAllStaff(t *testing.T) {
	repo := newFakeStaffRepo()
	seedProfile(repo)
	seedProfile(repo)

	svc := NewService(repo, &fakeAttendanceRepo{}, &fakeHolidayRepo{}, nil)

	resp, err := svc.GetAllStaff(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestStaffMonthlyAttendance(t *testing.T) {
	repo := newFakeStaffRepo()
	p := seedProfile(repo)

	hours := 8.5
	attRepo := &fakeAttendanceRepo{}
	punchIn := time.Date(2025, time.June, 2, 9, 0, 0, 0, calendar.Zone)
	punchOut := punchIn.Add(9 * time.Hour)
	attRepo.records = append(attRepo.records, attendance.AttendanceRecord{
		ID:           uuid.New(),
		UserID:       p.UserID,
		Date:         time.Date(2025, time.June, 2, 0, 0, 0, 0, calendar.Zone),
		PunchInTime:  punchIn,
		PunchOutTime: &punchOut,
		WorkingHours: &hours,
	})

	reason := "Family function"
	attRepo.records = append(attRepo.records, attendance.AttendanceRecord{
		ID:          uuid.New(),
		UserID:      p.UserID,
		Date:        time.Date(2025, time.June, 3, 0, 0, 0, 0, calendar.Zone),
		PunchInTime: time.Date(2025, time.June, 3, 0, 0, 0, 0, calendar.Zone),
		LeaveReason: &reason,
	})

	holRepo := &fakeHolidayRepo{holidays: []holiday.Holiday{{
		ID:   uuid.New(),
		Date: time.Date(2025, time.June, 16, 0, 0, 0, 0, calendar.Zone),
		Name: "Founders Day",
	}}}

	svc := NewServiceWithClock(repo, attRepo, holRepo, nil, fixedClock(2025, time.June, 20))

	resp, err := svc.StaffMonthlyAttendance(context.Background(), p.UserID.String(), "2025-06")
	assert.NoError(t, err)

	assert.Equal(t, p.ID.String(), resp.Staff.ID)
	assert.Len(t, resp.AttendanceRecords, 2)
	assert.Len(t, resp.Holidays, 1)

	// June 2025 has 21 Mon-Fri days; one falls on the seeded holiday.
	assert.Equal(t, 20, resp.Statistics.ExpectedWorkingDays)
	assert.Equal(t, 9.0, resp.Statistics.DailyExpectedHours)
	assert.Equal(t, 180.0, resp.Statistics.ExpectedTotalHours)
	assert.Equal(t, 8.5, resp.Statistics.TotalHoursWorked)
	assert.Equal(t, 1, resp.Statistics.CompletedDays)
	assert.Equal(t, 1, resp.Statistics.LeaveDays)
	assert.Equal(t, "Remaining", resp.Statistics.DifferenceLabel)
	assert.Equal(t, 171.5, resp.Statistics.DifferenceHours)
}

func TestStaffMonthlyAttendanceDefaultsToCurrentMonth(t *testing.T) {
	repo := newFakeStaffRepo()
	p := seedProfile(repo)

	svc := NewServiceWithClock(repo, &fakeAttendanceRepo{}, &fakeHolidayRepo{}, nil, fixedClock(2025, time.February, 10))

	resp, err := svc.StaffMonthlyAttendance(context.Background(), p.UserID.String(), "")
	assert.NoError(t, err)

	// February 2025 has 20 Mon-Fri days.
	assert.Equal(t, 20, resp.Statistics.ExpectedWorkingDays)
	assert.Empty(t, resp.AttendanceRecords)
}

func TestStaffMonthlyAttendanceInvalidMonth(t *testing.T) {
	repo := newFakeStaffRepo()
	p := seedProfile(repo)

	svc := NewService(repo, &fakeAttendanceRepo{}, &fakeHolidayRepo{}, nil)

	_, err := svc.StaffMonthlyAttendance(context.Background(), p.UserID.String(), "June-2025")
	assert.ErrorIs(t, err, stafferrors.ErrInvalidMonth)
}

func TestStaffMonthlyAttendanceUnknownStaff(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), &fakeAttendanceRepo{}, &fakeHolidayRepo{}, nil)

	_, err := svc.StaffMonthlyAttendance(context.Background(), uuid.New().String(), "2025-06")
	assert.ErrorIs(t, err, stafferrors.ErrProfileNotFound)
}
