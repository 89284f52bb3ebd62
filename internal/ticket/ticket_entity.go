package ticket

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"

	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusOnHold     = "ON_HOLD"
	StatusCompleted  = "COMPLETED"
)

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusOnHold, StatusCompleted:
		return true
	}
	return false
}

// Ticket is an HR request raised by one user and assigned to another. Both
// sides are participants; only participants (and admins) may view or comment.
type Ticket struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string          `gorm:"column:title;not null"`
	Description  string          `gorm:"column:description;type:text;not null"`
	Priority     string          `gorm:"column:priority;type:varchar(10);not null;default:'MEDIUM'"`
	Status       string          `gorm:"column:status;type:varchar(20);not null;default:'OPEN';index"`
	CreatedByID  uuid.UUID       `gorm:"column:created_by_id;type:uuid;not null;index"`
	AssignedToID uuid.UUID       `gorm:"column:assigned_to_id;type:uuid;not null;index"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
	CreatedBy    *TicketUser     `gorm:"foreignKey:CreatedByID;references:ID"`
	AssignedTo   *TicketUser     `gorm:"foreignKey:AssignedToID;references:ID"`
	Comments     []TicketComment `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// IsParticipant reports whether the user raised or was assigned this ticket.
func (t *Ticket) IsParticipant(userID uuid.UUID) bool {
	return t.CreatedByID == userID || t.AssignedToID == userID
}

type TicketComment struct {
	ID        uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TicketID  uuid.UUID   `gorm:"column:ticket_id;type:uuid;not null;index"`
	AuthorID  uuid.UUID   `gorm:"column:author_id;type:uuid;not null"`
	Body      string      `gorm:"column:body;type:text;not null"`
	CreatedAt time.Time   `gorm:"column:created_at"`
	Author    *TicketUser `gorm:"foreignKey:AuthorID;references:ID"`
}

func (TicketComment) TableName() string {
	return "ticket_comments"
}

// TicketUser is a read-only projection of the users table for display.
type TicketUser struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"column:email"`
	Role  string    `gorm:"column:role"`
}

func (TicketUser) TableName() string {
	return "users"
}
