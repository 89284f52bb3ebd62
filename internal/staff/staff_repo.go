package staff

import (
	"context"
	"database/sql"

	"github.com/anas1606/attendance/internal/attendance"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetByUserID(ctx context.Context, userID string) (*StaffProfile, error)
	FindAll(ctx context.Context) ([]StaffProfile, error)
	ScheduleForUser(ctx context.Context, userID string) (attendance.WorkSchedule, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) GetByUserID(ctx context.Context, userID string) (*StaffProfile, error) {
	var p StaffProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAll(ctx context.Context) ([]StaffProfile, error) {
	var rows []StaffProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}

// ScheduleForUser implements attendance.ScheduleSource.
func (r *repository) ScheduleForUser(ctx context.Context, userID string) (attendance.WorkSchedule, error) {
	p, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.WorkSchedule{}, err
	}
	return attendance.WorkSchedule{
		WorkingDays:   p.WorkingDays,
		OfficeTimeIn:  p.OfficeTimeIn,
		OfficeTimeOut: p.OfficeTimeOut,
	}, nil
}
