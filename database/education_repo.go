package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmorel/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type EducationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{db}
}

// FindAll returns all non-deleted education entries ordered for display
func (r *EducationRepo) FindAll() ([]*models.Education, error) {
	var entries []*models.Education
	err := r.db.Where("is_deleted = ?", false).
		Order("sort_order ASC, start_date DESC").
		Find(&entries).Error
	return entries, err
}

// FindByID returns an education entry by its ID
func (r *EducationRepo) FindByID(id uuid.UUID) (*models.Education, error) {
	var entry models.Education
	err := r.db.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Add inserts a new education entry into the database
func (r *EducationRepo) Add(entry *models.Education) error {
	return r.db.Create(entry).Error
}

// Update updates an existing education entry in the database
func (r *EducationRepo) Update(entry *models.Education) error {
	return r.db.Save(entry).Error
}

// SoftDelete marks an education entry deleted
func (r *EducationRepo) SoftDelete(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.Education{}).Where("id = ?", id).Updates(map[string]any{
		"is_deleted": true,
		"deleted_at": &now,
	}).Error
}
