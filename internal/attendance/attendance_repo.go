package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *AttendanceRecord) error
	Update(ctx context.Context, rec *AttendanceRecord) error
	FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*AttendanceRecord, error)
	FindByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]AttendanceRecord, error)
	CreateLunchBreak(ctx context.Context, lb *LunchBreak) error
	UpdateLunchBreak(ctx context.Context, lb *LunchBreak) error
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

func (r *repository) Create(ctx context.Context, rec *AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Update(ctx context.Context, rec *AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	err := r.db.WithContext(ctx).
		Preload("LunchBreaks").
		Where("user_id = ?", userID).
		Where("date = ?", date.Format("2006-01-02")).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]AttendanceRecord, error) {
	var recs []AttendanceRecord
	err := r.db.WithContext(ctx).
		Preload("LunchBreaks").
		Where("user_id = ?", userID).
		Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date DESC").
		Find(&recs).Error
	return recs, err
}

func (r *repository) CreateLunchBreak(ctx context.Context, lb *LunchBreak) error {
	return r.db.WithContext(ctx).Create(lb).Error
}

func (r *repository) UpdateLunchBreak(ctx context.Context, lb *LunchBreak) error {
	return r.db.WithContext(ctx).Save(lb).Error
}
