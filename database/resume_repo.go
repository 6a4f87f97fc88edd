package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmorel/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type ResumeRepo struct {
	db *gorm.DB
}

func NewResumeRepo(db *gorm.DB) *ResumeRepo {
	return &ResumeRepo{db}
}

// FindAll returns all non-deleted resumes, newest first
func (r *ResumeRepo) FindAll() ([]*models.Resume, error) {
	var resumes []*models.Resume
	err := r.db.Preload("Media").Where("is_deleted = ?", false).Order("created_at DESC").Find(&resumes).Error
	return resumes, err
}

// FindByID returns a resume by its ID with its media record
func (r *ResumeRepo) FindByID(id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.Preload("Media").First(&resume, id).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// FindDefaultPublic returns the resume served to unauthenticated download
// requests: flagged default, public, not deleted; newest created_at wins ties.
func (r *ResumeRepo) FindDefaultPublic() (*models.Resume, error) {
	var resume models.Resume
	err := r.db.Preload("Media").
		Where("is_default = ? AND is_public = ? AND is_deleted = ?", true, true, false).
		Order("created_at DESC").
		First(&resume).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// Add inserts a new resume into the database
func (r *ResumeRepo) Add(resume *models.Resume) error {
	return r.db.Create(resume).Error
}

// SoftDelete marks a resume deleted and clears its default flag
func (r *ResumeRepo) SoftDelete(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.Resume{}).Where("id = ?", id).Updates(map[string]any{
		"is_deleted": true,
		"is_default": false,
		"deleted_at": &now,
	}).Error
}

// SetDefault clears every other default flag and sets the new one inside a
// single transaction, so concurrent calls leave exactly one default.
func (r *ResumeRepo) SetDefault(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Resume{}).
			Where("is_default = ?", true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Resume{}).
			Where("id = ? AND is_deleted = ?", id, false).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
