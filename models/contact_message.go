package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageStatus tracks where a contact message sits in the admin inbox.
type MessageStatus string

const (
	MessageNew      MessageStatus = "NEW"
	MessageRead     MessageStatus = "READ"
	MessageArchived MessageStatus = "ARCHIVED"
)

// Valid reports whether the status is one of the known enum values.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessageNew, MessageRead, MessageArchived:
		return true
	}
	return false
}

// ContactMessage is an inbound message from the public contact form. These
// are hard-deleted; the ARCHIVED status covers retention.
type ContactMessage struct {
	ID        uuid.UUID     `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string        `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string        `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   *string       `json:"subject,omitempty" db:"subject" gorm:"type:text"`
	Message   string        `json:"message" db:"message" gorm:"type:text;not null"`
	Status    MessageStatus `json:"status" db:"status" gorm:"type:text;not null;default:'NEW'"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
