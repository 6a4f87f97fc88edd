package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a portfolio project with an optional cover image and a
// gallery of additional media.
type Project struct {
	ID           uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug         string                      `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Description  string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Content      *string                     `json:"content,omitempty" db:"content" gorm:"type:text"`
	Tags         datatypes.JSONSlice[string] `json:"tags,omitempty" db:"tags" gorm:"type:jsonb"`
	LiveURL      *string                     `json:"liveUrl,omitempty" db:"live_url" gorm:"type:text"`
	RepoURL      *string                     `json:"repoUrl,omitempty" db:"repo_url" gorm:"type:text"`
	CoverImageID *uuid.UUID                  `json:"coverImageId,omitempty" db:"cover_image_id" gorm:"type:uuid"`
	UserID       uuid.UUID                   `json:"userId" db:"user_id" gorm:"type:uuid;not null"`
	SeoTitle     *string                     `json:"seoTitle,omitempty" db:"seo_title" gorm:"type:text"`
	SeoDesc      *string                     `json:"seoDesc,omitempty" db:"seo_desc" gorm:"type:text"`
	IsDeleted    bool                        `json:"isDeleted" db:"is_deleted" gorm:"type:boolean;not null;default:false"`
	DeletedAt    *time.Time                  `json:"deletedAt,omitempty" db:"deleted_at" gorm:"type:timestamp"`
	CreatedAt    time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time                   `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	CoverImage *Media  `json:"coverImage,omitempty" gorm:"foreignKey:CoverImageID;references:ID;constraint:OnDelete:SET NULL"`
	Gallery    []Media `json:"gallery,omitempty" gorm:"many2many:project_gallery;constraint:OnDelete:CASCADE"`
}
