package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmorel/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns all non-deleted posts for the admin dashboard, newest first
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("CoverImage").Where("is_deleted = ?", false).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindPublished returns the public blog listing: published and not deleted
func (r *PostRepo) FindPublished() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("CoverImage").
		Where("published = ? AND is_deleted = ?", true, false).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its ID with its cover image
func (r *PostRepo) FindByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("CoverImage").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlug returns a published post by its slug
func (r *PostRepo) FindBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("CoverImage").
		Where("slug = ? AND published = ? AND is_deleted = ?", slug, true, false).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post into the database
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update updates an existing post in the database
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// SoftDelete marks a post deleted and unpublishes it in the same update
func (r *PostRepo) SoftDelete(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.Post{}).Where("id = ?", id).Updates(map[string]any{
		"is_deleted": true,
		"published":  false,
		"deleted_at": &now,
	}).Error
}
