package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmorel/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db}
}

// FindAll returns all non-deleted testimonials ordered for display
func (r *TestimonialRepo) FindAll() ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	err := r.db.Where("is_deleted = ?", false).
		Order("sort_order ASC, created_at DESC").
		Find(&testimonials).Error
	return testimonials, err
}

// FindByID returns a testimonial by its ID
func (r *TestimonialRepo) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, id).Error
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Add inserts a new testimonial into the database
func (r *TestimonialRepo) Add(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

// Update updates an existing testimonial in the database
func (r *TestimonialRepo) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// SoftDelete marks a testimonial deleted
func (r *TestimonialRepo) SoftDelete(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.Testimonial{}).Where("id = ?", id).Updates(map[string]any{
		"is_deleted": true,
		"deleted_at": &now,
	}).Error
}
