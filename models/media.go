package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaType is the coarse classification of an uploaded file.
type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaPDF   MediaType = "PDF"
	MediaRaw   MediaType = "RAW"
)

// Media tracks a file held by the storage provider, independent of which
// content entity references it. Exactly one parent owns a Media row at a
// time; replacing a parent's file deletes the old row and the remote blob.
type Media struct {
	ID               uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	URL              string    `json:"url" db:"url" gorm:"type:text;not null"`
	PublicID         string    `json:"publicId" db:"public_id" gorm:"type:text;not null;unique"`
	OriginalFilename *string   `json:"originalFilename,omitempty" db:"original_filename" gorm:"type:text"`
	Type             MediaType `json:"type" db:"type" gorm:"type:text;not null;default:'IMAGE'"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
