package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmorel/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all non-deleted projects, newest first
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("CoverImage").Preload("Gallery").
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID with its cover image and gallery
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("CoverImage").Preload("Gallery").First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a non-deleted project by its slug
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("CoverImage").Preload("Gallery").
		Where("slug = ? AND is_deleted = ?", slug, false).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// ReplaceGallery swaps the project's gallery association for the given media
func (r *ProjectRepo) ReplaceGallery(project *models.Project, gallery []models.Media) error {
	return r.db.Model(project).Association("Gallery").Replace(gallery)
}

// SoftDelete marks a project deleted
func (r *ProjectRepo) SoftDelete(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(map[string]any{
		"is_deleted": true,
		"deleted_at": &now,
	}).Error
}
