package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a quote shown on the public home page.
type Testimonial struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string     `json:"name" db:"name" gorm:"type:text;not null"`
	Role      *string    `json:"role,omitempty" db:"role" gorm:"type:text"`
	Company   *string    `json:"company,omitempty" db:"company" gorm:"type:text"`
	Message   string     `json:"message" db:"message" gorm:"type:text;not null"`
	AvatarURL *string    `json:"avatarUrl,omitempty" db:"avatar_url" gorm:"type:text"`
	Order     int        `json:"order" db:"sort_order" gorm:"column:sort_order;type:integer;not null;default:0"`
	UserID    uuid.UUID  `json:"userId" db:"user_id" gorm:"type:uuid;not null"`
	IsDeleted bool       `json:"isDeleted" db:"is_deleted" gorm:"type:boolean;not null;default:false"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at" gorm:"type:timestamp"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
