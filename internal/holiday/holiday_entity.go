package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Holiday is an organization-wide non-working civil date. Date is unique;
// the attendance state machine consults it as a day-level block.
type Holiday struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Date        time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_holiday_date"`
	Name        string    `gorm:"column:name;not null"`
	Description *string   `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
