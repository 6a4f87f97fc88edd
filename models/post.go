package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Post represents a blog post with its SEO metadata and optional cover image.
type Post struct {
	ID           uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug         string                      `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Excerpt      string                      `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content      string                      `json:"content" db:"content" gorm:"type:text;not null"`
	Tags         datatypes.JSONSlice[string] `json:"tags,omitempty" db:"tags" gorm:"type:jsonb"`
	Published    bool                        `json:"published" db:"published" gorm:"type:boolean;not null;default:false"`
	CoverImageID *uuid.UUID                  `json:"coverImageId,omitempty" db:"cover_image_id" gorm:"type:uuid"`
	AuthorID     uuid.UUID                   `json:"authorId" db:"author_id" gorm:"type:uuid;not null"`
	SeoTitle     *string                     `json:"seoTitle,omitempty" db:"seo_title" gorm:"type:text"`
	SeoDesc      *string                     `json:"seoDesc,omitempty" db:"seo_desc" gorm:"type:text"`
	IsDeleted    bool                        `json:"isDeleted" db:"is_deleted" gorm:"type:boolean;not null;default:false"`
	DeletedAt    *time.Time                  `json:"deletedAt,omitempty" db:"deleted_at" gorm:"type:timestamp"`
	CreatedAt    time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time                   `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	CoverImage *Media `json:"coverImage,omitempty" gorm:"foreignKey:CoverImageID;references:ID;constraint:OnDelete:SET NULL"`
}
