package models

import (
	"time"

	"github.com/google/uuid"
)

// Education represents one entry on the public About page timeline.
type Education struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	School      string     `json:"school" db:"school" gorm:"type:text;not null"`
	Degree      string     `json:"degree" db:"degree" gorm:"type:text;not null"`
	Field       *string    `json:"field,omitempty" db:"field" gorm:"type:text"`
	StartDate   time.Time  `json:"startDate" db:"start_date" gorm:"type:timestamp;not null"`
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date" gorm:"type:timestamp"`
	Grade       *string    `json:"grade,omitempty" db:"grade" gorm:"type:text"`
	Description *string    `json:"description,omitempty" db:"description" gorm:"type:text"`
	Order       int        `json:"order" db:"sort_order" gorm:"column:sort_order;type:integer;not null;default:0"`
	UserID      uuid.UUID  `json:"userId" db:"user_id" gorm:"type:uuid;not null"`
	IsDeleted   bool       `json:"isDeleted" db:"is_deleted" gorm:"type:boolean;not null;default:false"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty" db:"deleted_at" gorm:"type:timestamp"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
