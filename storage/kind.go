package storage

import "strings"

// ResourceKind is the provider-facing classification of an upload.
type ResourceKind string

const (
	KindImage ResourceKind = "image"
	KindRaw   ResourceKind = "raw"
)

// KindForContentType classifies a MIME type the way the upload gateway
// always has: anything smelling like a document is raw, everything else is
// treated as an image.
func KindForContentType(contentType string) ResourceKind {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "pdf") || strings.Contains(ct, "document") {
		return KindRaw
	}
	return KindImage
}
