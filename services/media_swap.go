package services

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jmorel/portfolio-cms-backend/database"
	"github.com/jmorel/portfolio-cms-backend/models"
	"github.com/jmorel/portfolio-cms-backend/storage"
)

// MediaSwapper runs the two-system delete/replace sequence for owned media.
// Ordering is fixed: remote blob first, then the database row. A remote
// failure is logged and the sweep in reconcile.go picks up the orphan later.
type MediaSwapper struct {
	blobs     storage.BlobStore
	mediaRepo *database.MediaRepo
}

func NewMediaSwapper(blobs storage.BlobStore, mediaRepo *database.MediaRepo) *MediaSwapper {
	return &MediaSwapper{blobs: blobs, mediaRepo: mediaRepo}
}

// Remove deletes a media record and its blob. Safe to call with nil.
func (s *MediaSwapper) Remove(ctx context.Context, media *models.Media) error {
	if media == nil {
		return nil
	}

	if err := s.blobs.Delete(ctx, media.PublicID); err != nil {
		log.Error().Err(err).Str("publicId", media.PublicID).
			Msg("Failed to delete blob from storage provider, continuing with row delete")
	}

	return s.mediaRepo.Delete(media.ID)
}

// RemoveByPublicID removes a blob and its tracking row by provider key. An
// untracked key still gets its blob deleted.
func (s *MediaSwapper) RemoveByPublicID(ctx context.Context, publicID string) error {
	media, err := s.mediaRepo.FindByPublicID(publicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.blobs.Delete(ctx, publicID)
	}
	if err != nil {
		return err
	}
	return s.Remove(ctx, media)
}

// Replace removes the old media (when the URL actually changed) and records
// the new one. Returns the media row the parent should now point at.
func (s *MediaSwapper) Replace(ctx context.Context, old *models.Media, newURL string, mediaType models.MediaType) (*models.Media, error) {
	if old != nil && old.URL == newURL {
		return old, nil
	}

	if err := s.Remove(ctx, old); err != nil {
		return nil, err
	}

	// The upload endpoint already tracked the blob, so this usually just
	// finds the existing row.
	created := &models.Media{
		URL:      newURL,
		PublicID: PublicIDFromURL(newURL),
		Type:     mediaType,
	}
	if err := s.mediaRepo.UpsertByPublicID(created); err != nil {
		return nil, err
	}
	if created.ID == uuid.Nil {
		existing, err := s.mediaRepo.FindByPublicID(created.PublicID)
		if err != nil {
			return nil, err
		}
		created = existing
	}
	return created, nil
}

// PublicIDFromURL extracts the provider key from a delivery URL: the last
// path segment, extension kept so it matches the stored object key.
func PublicIDFromURL(url string) string {
	trimmed := strings.TrimSuffix(url, "/")
	return path.Base(trimmed)
}
