package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jmorel/portfolio-cms-backend/database"
	"github.com/jmorel/portfolio-cms-backend/storage"
)

// ReconcileReport summarizes one sweep over the bucket and the media table.
type ReconcileReport struct {
	BlobCount     int      `json:"blobCount"`
	RecordCount   int      `json:"recordCount"`
	OrphanedBlobs []string `json:"orphanedBlobs"`
	OrphanedRows  []string `json:"orphanedRows"`
	DeletedBlobs  int      `json:"deletedBlobs"`
}

// Reconciler is the compensation for the non-transactional two-system
// deletes: it finds blobs with no media row (and rows with no blob) after a
// partial failure.
type Reconciler struct {
	blobs     storage.BlobStore
	mediaRepo *database.MediaRepo
	logger    zerolog.Logger
}

func NewReconciler(blobs storage.BlobStore, mediaRepo *database.MediaRepo) *Reconciler {
	return &Reconciler{
		blobs:     blobs,
		mediaRepo: mediaRepo,
		logger:    log.With().Str("service", "reconciler").Logger(),
	}
}

// Sweep lists both sides concurrently and diffs them. With dryRun false,
// orphaned blobs are deleted; orphaned rows are only reported since the row
// may describe a blob mid-upload.
func (r *Reconciler) Sweep(ctx context.Context, dryRun bool) (*ReconcileReport, error) {
	var (
		keys      []string
		publicIDs []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		keys, err = r.blobs.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		publicIDs, err = r.mediaRepo.ListPublicIDs()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(publicIDs))
	for _, id := range publicIDs {
		known[id] = true
	}
	stored := make(map[string]bool, len(keys))
	for _, key := range keys {
		stored[key] = true
	}

	report := &ReconcileReport{
		BlobCount:   len(keys),
		RecordCount: len(publicIDs),
	}
	for _, key := range keys {
		if !known[key] {
			report.OrphanedBlobs = append(report.OrphanedBlobs, key)
		}
	}
	for _, id := range publicIDs {
		if !stored[id] {
			report.OrphanedRows = append(report.OrphanedRows, id)
		}
	}

	if !dryRun {
		for _, key := range report.OrphanedBlobs {
			if err := r.blobs.Delete(ctx, key); err != nil {
				r.logger.Error().Err(err).Str("key", key).Msg("Failed to delete orphaned blob")
				continue
			}
			report.DeletedBlobs++
		}
	}

	r.logger.Info().
		Int("blobs", report.BlobCount).
		Int("records", report.RecordCount).
		Int("orphanedBlobs", len(report.OrphanedBlobs)).
		Int("orphanedRows", len(report.OrphanedRows)).
		Bool("dryRun", dryRun).
		Msg("Reconciliation sweep finished")

	return report, nil
}
