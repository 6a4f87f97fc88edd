package database

import (
	"github.com/google/uuid"
	"github.com/jmorel/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// FindAll returns every contact message, newest first
func (r *ContactMessageRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// FindByID returns a contact message by its ID
func (r *ContactMessageRepo) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Add inserts a new contact message into the database
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// UpdateStatus moves a message through the inbox workflow
func (r *ContactMessageRepo) UpdateStatus(id uuid.UUID, status models.MessageStatus) error {
	return r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes a contact message permanently; ARCHIVED covers retention
func (r *ContactMessageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}
