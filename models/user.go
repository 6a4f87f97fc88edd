package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Role is the set of capabilities granted to an authenticated principal.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleViewer Role = "VIEWER"
)

// Capability names a single permitted operation class.
type Capability string

const (
	CapManageContent Capability = "manage_content"
	CapManageMedia   Capability = "manage_media"
	CapViewInbox     Capability = "view_inbox"
)

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	switch r {
	case RoleAdmin:
		return true
	default:
		return false
	}
}

// Principal is the authenticated caller, resolved once at the request
// boundary and passed explicitly into mutating operations.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// User holds the single admin account; its profile fields are also the
// content of the public About page.
type User struct {
	ID          uuid.UUID                  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string                     `json:"name" db:"name" gorm:"type:text;not null"`
	Email       string                     `json:"email" db:"email" gorm:"type:text;not null;unique"`
	Role        Role                       `json:"role" db:"role" gorm:"type:text;not null;default:'ADMIN'"`
	Image       *string                    `json:"image,omitempty" db:"image" gorm:"type:text"`
	Tagline     *string                    `json:"tagline,omitempty" db:"tagline" gorm:"type:text"`
	Bio         *string                    `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	Skills      datatypes.JSONSlice[string] `json:"skills,omitempty" db:"skills" gorm:"type:jsonb"`
	SocialLinks datatypes.JSON             `json:"socialLinks,omitempty" db:"social_links" gorm:"type:jsonb"`
	CreatedAt   time.Time                  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time                  `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
