package database

import (
	"github.com/google/uuid"
	"github.com/jmorel/portfolio-cms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) *MediaRepo {
	return &MediaRepo{db}
}

// Add inserts a new media record into the database
func (r *MediaRepo) Add(media *models.Media) error {
	return r.db.Create(media).Error
}

// FindByID returns a media record by its ID
func (r *MediaRepo) FindByID(id uuid.UUID) (*models.Media, error) {
	var media models.Media
	err := r.db.First(&media, id).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// UpsertByPublicID creates the record or refreshes the URL if the provider
// key is already tracked (profile image re-saves hit this path). Only the URL
// is refreshed; the original filename recorded at upload time stays.
func (r *MediaRepo) UpsertByPublicID(media *models.Media) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "public_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"url"}),
	}).Create(media).Error
}

// FindByPublicID returns the media record tracking a provider key
func (r *MediaRepo) FindByPublicID(publicID string) (*models.Media, error) {
	var media models.Media
	err := r.db.Where("public_id = ?", publicID).First(&media).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// Delete removes a media record from the database by id
func (r *MediaRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Media{}, id).Error
}

// ListPublicIDs returns every provider key the database knows about; the
// reconciliation sweep diffs this against the bucket listing.
func (r *MediaRepo) ListPublicIDs() ([]string, error) {
	var publicIDs []string
	err := r.db.Model(&models.Media{}).Pluck("public_id", &publicIDs).Error
	return publicIDs, err
}
