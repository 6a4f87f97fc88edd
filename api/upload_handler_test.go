package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmorel/portfolio-cms-backend/models"
	"github.com/jmorel/portfolio-cms-backend/storage"
)

type fakeBlobStore struct {
	uploaded     map[string][]byte
	uploadErr    error
	deleted      []string
	presignedURL string
	objects      map[string]*storage.Object
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		uploaded: map[string][]byte{},
		objects:  map[string]*storage.Object{},
	}
}

func (f *fakeBlobStore) Upload(_ context.Context, filename, contentType string, size int64, r io.Reader) (*storage.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	key := "generated-key-" + filename
	f.uploaded[key] = data
	return &storage.UploadResult{
		URL:              "https://cdn.example.com/" + key,
		PublicID:         key,
		OriginalFilename: filename,
	}, nil
}

func (f *fakeBlobStore) Get(_ context.Context, publicID string) (*storage.Object, error) {
	obj, ok := f.objects[publicID]
	if !ok {
		return nil, errors.New("no such key")
	}
	return obj, nil
}

func (f *fakeBlobStore) PresignDownload(_ context.Context, publicID, filename string, _ time.Duration) (string, error) {
	if f.presignedURL == "" {
		return "", errors.New("presign not configured")
	}
	return f.presignedURL, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

func (f *fakeBlobStore) List(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(f.uploaded))
	for key := range f.uploaded {
		keys = append(keys, key)
	}
	return keys, nil
}

type fakeMediaTracker struct {
	added  []*models.Media
	addErr error
}

func (f *fakeMediaTracker) Add(media *models.Media) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, media)
	return nil
}

func multipartBody(t *testing.T, fieldName, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + fieldName + `"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadFileStoresBlobAndTracksMedia(t *testing.T) {
	blobs := newFakeBlobStore()
	tracker := &fakeMediaTracker{}
	handler := newUploadHandler(blobs, tracker)

	body, contentType := multipartBody(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.uploadFile().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got %d want %d, body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp UploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PublicID == "" || resp.SecureURL == "" {
		t.Fatalf("incomplete upload response: %+v", resp)
	}
	if resp.OriginalFilename != "resume.pdf" {
		t.Fatalf("unexpected original filename: got %q", resp.OriginalFilename)
	}

	if got := string(blobs.uploaded[resp.PublicID]); got != "%PDF-1.4 fake" {
		t.Fatalf("blob content mismatch: got %q", got)
	}

	if len(tracker.added) != 1 {
		t.Fatalf("expected 1 tracked media row, got %d", len(tracker.added))
	}
	if tracker.added[0].Type != models.MediaPDF {
		t.Fatalf("expected PDF media type, got %s", tracker.added[0].Type)
	}
}

func TestUploadFileClassifiesImages(t *testing.T) {
	blobs := newFakeBlobStore()
	tracker := &fakeMediaTracker{}
	handler := newUploadHandler(blobs, tracker)

	body, contentType := multipartBody(t, "file", "cover.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.uploadFile().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if len(tracker.added) != 1 || tracker.added[0].Type != models.MediaImage {
		t.Fatalf("expected tracked IMAGE media, got %+v", tracker.added)
	}
}

func TestUploadFileMissingFieldIsBadRequest(t *testing.T) {
	handler := newUploadHandler(newFakeBlobStore(), &fakeMediaTracker{})

	body, contentType := multipartBody(t, "wrong", "a.png", "image/png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.uploadFile().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUploadFileProviderFailureIsBadGateway(t *testing.T) {
	blobs := newFakeBlobStore()
	blobs.uploadErr = errors.New("bucket unavailable")
	tracker := &fakeMediaTracker{}
	handler := newUploadHandler(blobs, tracker)

	body, contentType := multipartBody(t, "file", "a.png", "image/png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.uploadFile().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusBadGateway)
	}
	if len(tracker.added) != 0 {
		t.Fatalf("no media row should be tracked on upload failure")
	}
}

func TestMediaTypeForContentType(t *testing.T) {
	cases := []struct {
		contentType string
		want        models.MediaType
	}{
		{"application/pdf", models.MediaPDF},
		{"image/png", models.MediaImage},
		{"image/jpeg", models.MediaImage},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", models.MediaRaw},
		{"application/msword", models.MediaImage},
	}
	for _, tc := range cases {
		if got := mediaTypeForContentType(tc.contentType); got != tc.want {
			t.Errorf("mediaTypeForContentType(%q) = %s, want %s", tc.contentType, got, tc.want)
		}
	}
}
