package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmorel/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns all non-deleted experience entries ordered for display
func (r *ExperienceRepo) FindAll() ([]*models.Experience, error) {
	var entries []*models.Experience
	err := r.db.Where("is_deleted = ?", false).
		Order("sort_order ASC, start_date DESC").
		Find(&entries).Error
	return entries, err
}

// FindByID returns an experience entry by its ID
func (r *ExperienceRepo) FindByID(id uuid.UUID) (*models.Experience, error) {
	var entry models.Experience
	err := r.db.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Add inserts a new experience entry into the database
func (r *ExperienceRepo) Add(entry *models.Experience) error {
	return r.db.Create(entry).Error
}

// Update updates an existing experience entry in the database
func (r *ExperienceRepo) Update(entry *models.Experience) error {
	return r.db.Save(entry).Error
}

// SoftDelete marks an experience entry deleted
func (r *ExperienceRepo) SoftDelete(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.Experience{}).Where("id = ?", id).Updates(map[string]any{
		"is_deleted": true,
		"deleted_at": &now,
	}).Error
}
