package storage

import (
	"context"
	"io"
	"time"
)

// Object is a byte-stream passthrough handle for a stored file. Callers copy
// Body straight through to the response without knowing the provider.
type Object struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// UploadResult carries what the provider reports back after an upload.
type UploadResult struct {
	URL              string
	PublicID         string
	OriginalFilename string
}

// BlobStore is the single abstraction over the object-storage provider. One
// implementation per hosting runtime; handlers never touch provider SDKs.
type BlobStore interface {
	// Upload streams the file to the provider under a generated key.
	Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (*UploadResult, error)

	// Get opens the stored object for streaming.
	Get(ctx context.Context, publicID string) (*Object, error)

	// PresignDownload mints a short-lived signed URL that forces an
	// attachment download under the given filename.
	PresignDownload(ctx context.Context, publicID, filename string, expiry time.Duration) (string, error)

	// Delete removes the blob. Best-effort from the caller's perspective.
	Delete(ctx context.Context, publicID string) error

	// List returns every key in the bucket, for the reconciliation sweep.
	List(ctx context.Context) ([]string, error)
}
