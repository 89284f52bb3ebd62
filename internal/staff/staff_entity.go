package staff

import (
	"time"

	"github.com/google/uuid"
)

// StaffProfile holds the employment schedule of one user. WorkingDays are
// canonical English weekday names; office times are "HH:MM" civil
// times-of-day.
type StaffProfile struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_staff_profile_user"`
	FullName      string    `gorm:"column:full_name;not null"`
	Salary        float64   `gorm:"column:salary;not null;default:0"`
	OfficeTimeIn  string    `gorm:"column:office_time_in;type:varchar(5);not null"`
	OfficeTimeOut string    `gorm:"column:office_time_out;type:varchar(5);not null"`
	WorkingDays   []string  `gorm:"column:working_days;serializer:json;not null"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
	User          *UserRef  `gorm:"foreignKey:UserID;references:ID"`
}

func (StaffProfile) TableName() string {
	return "staff_profiles"
}

type UserRef struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"column:email"`
	Role  string    `gorm:"column:role"`
}

func (UserRef) TableName() string {
	return "users"
}
