package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume links a logical resume entry to its uploaded document. At most one
// row has IsDefault set; the repo enforces that inside a transaction.
type Resume struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title     string     `json:"title" db:"title" gorm:"type:text;not null"`
	FileURL   string     `json:"fileUrl" db:"file_url" gorm:"type:text;not null"`
	MediaID   *uuid.UUID `json:"mediaId,omitempty" db:"media_id" gorm:"type:uuid"`
	UserID    uuid.UUID  `json:"userId" db:"user_id" gorm:"type:uuid;not null"`
	IsDefault bool       `json:"isDefault" db:"is_default" gorm:"type:boolean;not null;default:false"`
	IsPublic  bool       `json:"isPublic" db:"is_public" gorm:"type:boolean;not null;default:true"`
	IsDeleted bool       `json:"isDeleted" db:"is_deleted" gorm:"type:boolean;not null;default:false"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at" gorm:"type:timestamp"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Media *Media `json:"media,omitempty" gorm:"foreignKey:MediaID;references:ID;constraint:OnDelete:SET NULL"`
}
