package ticket

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id string) (*Ticket, error)
	FindByViewer(ctx context.Context, userID string, filter ListFilter) ([]Ticket, int64, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Ticket, int64, error)
	CreateComment(ctx context.Context, c *TicketComment) error
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

func (r *repository) Create(ctx context.Context, t *Ticket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *Ticket) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Ticket, error) {
	var t Ticket
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("AssignedTo").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.Author").
		Where("id = ?", id).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByViewer(ctx context.Context, userID string, filter ListFilter) ([]Ticket, int64, error) {
	q := r.db.WithContext(ctx).Model(&Ticket{})

	switch filter.View {
	case "assigned":
		q = q.Where("assigned_to_id = ?", userID)
	case "created":
		q = q.Where("created_by_id = ?", userID)
	default:
		q = q.Where("assigned_to_id = ? OR created_by_id = ?", userID, userID)
	}

	return r.page(q, filter)
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Ticket, int64, error) {
	return r.page(r.db.WithContext(ctx).Model(&Ticket{}), filter)
}

func (r *repository) page(q *gorm.DB, filter ListFilter) ([]Ticket, int64, error) {
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Ticket
	err := q.
		Preload("CreatedBy").
		Preload("AssignedTo").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) CreateComment(ctx context.Context, c *TicketComment) error {
	return r.db.WithContext(ctx).Create(c).Error
}
