package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmorel/portfolio-cms-backend/models"
	"github.com/jmorel/portfolio-cms-backend/storage"
)

type fakeResumeSource struct {
	byID       map[uuid.UUID]*models.Resume
	defaultRes *models.Resume
}

func (f *fakeResumeSource) FindByID(id uuid.UUID) (*models.Resume, error) {
	resume, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return resume, nil
}

func (f *fakeResumeSource) FindDefaultPublic() (*models.Resume, error) {
	if f.defaultRes == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.defaultRes, nil
}

func testResume(publicID, filename string) *models.Resume {
	return &models.Resume{
		ID:        uuid.New(),
		Title:     "My Resume",
		FileURL:   "https://cdn.example.com/" + publicID,
		IsDefault: true,
		IsPublic:  true,
		Media: &models.Media{
			ID:               uuid.New(),
			URL:              "https://cdn.example.com/" + publicID,
			PublicID:         publicID,
			OriginalFilename: &filename,
			Type:             models.MediaPDF,
		},
	}
}

func TestDownloadDefaultResumeRedirects(t *testing.T) {
	blobs := newFakeBlobStore()
	blobs.presignedURL = "https://bucket.example.com/signed?sig=abc"
	resumes := &fakeResumeSource{defaultRes: testResume("abc123.pdf", "resume.pdf")}
	handler := newDownloadHandler(resumes, blobs, DownloadModeRedirect, 15*time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/download/resume", nil)
	rec := httptest.NewRecorder()

	handler.downloadDefaultResume().ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("unexpected status: got %d want %d, body %s", rec.Code, http.StatusFound, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != blobs.presignedURL {
		t.Fatalf("unexpected redirect target: got %q", got)
	}
}

func TestDownloadDefaultResumeMissingIs404(t *testing.T) {
	handler := newDownloadHandler(&fakeResumeSource{}, newFakeBlobStore(), DownloadModeRedirect, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/download/resume", nil)
	rec := httptest.NewRecorder()

	handler.downloadDefaultResume().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDownloadDefaultResumeWithoutMediaIs404(t *testing.T) {
	resume := testResume("abc123.pdf", "resume.pdf")
	resume.Media = nil
	blobs := newFakeBlobStore()
	blobs.presignedURL = "https://bucket.example.com/signed?sig=abc"
	handler := newDownloadHandler(&fakeResumeSource{defaultRes: resume}, blobs, DownloadModeRedirect, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/download/resume", nil)
	rec := httptest.NewRecorder()

	handler.downloadDefaultResume().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusNotFound)
	}
	if got := rec.Header().Get("Location"); got != "" {
		t.Fatalf("expected no redirect, got Location %q", got)
	}
}

func TestDownloadResumeWithoutFilenameIs404(t *testing.T) {
	resume := testResume("abc123.pdf", "resume.pdf")
	resume.Media.OriginalFilename = nil
	resumes := &fakeResumeSource{byID: map[uuid.UUID]*models.Resume{resume.ID: resume}}
	handler := newDownloadHandler(resumes, newFakeBlobStore(), DownloadModeRedirect, time.Minute)

	req := requestWithURLParam(http.MethodGet, "/download/resume/"+resume.ID.String(), "resumeID", resume.ID.String())
	principal := models.Principal{UserID: uuid.New(), Role: models.RoleAdmin}
	req = req.WithContext(ctxWithPrincipal(req.Context(), principal))
	rec := httptest.NewRecorder()

	handler.downloadResume().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDownloadDefaultResumeProxiesBytes(t *testing.T) {
	blobs := newFakeBlobStore()
	blobs.objects["abc123.pdf"] = &storage.Object{
		Body:          io.NopCloser(strings.NewReader("%PDF-1.4 proxied")),
		ContentType:   "application/pdf",
		ContentLength: 16,
	}
	resumes := &fakeResumeSource{defaultRes: testResume("abc123.pdf", "resume.pdf")}
	handler := newDownloadHandler(resumes, blobs, DownloadModeProxy, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/download/resume", nil)
	rec := httptest.NewRecorder()

	handler.downloadDefaultResume().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != "%PDF-1.4 proxied" {
		t.Fatalf("unexpected body: got %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="resume.pdf"` {
		t.Fatalf("unexpected disposition: got %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("unexpected content type: got %q", got)
	}
}

func TestDownloadResumeByIDRequiresSession(t *testing.T) {
	resume := testResume("abc123.pdf", "resume.pdf")
	resumes := &fakeResumeSource{byID: map[uuid.UUID]*models.Resume{resume.ID: resume}}
	handler := newDownloadHandler(resumes, newFakeBlobStore(), DownloadModeRedirect, time.Minute)

	req := requestWithURLParam(http.MethodGet, "/download/resume/"+resume.ID.String(), "resumeID", resume.ID.String())
	rec := httptest.NewRecorder()

	handler.downloadResume().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestDownloadResumeByIDWithSession(t *testing.T) {
	blobs := newFakeBlobStore()
	blobs.presignedURL = "https://bucket.example.com/signed?sig=xyz"
	resume := testResume("abc123.pdf", "resume.pdf")
	resumes := &fakeResumeSource{byID: map[uuid.UUID]*models.Resume{resume.ID: resume}}
	handler := newDownloadHandler(resumes, blobs, DownloadModeRedirect, time.Minute)

	req := requestWithURLParam(http.MethodGet, "/download/resume/"+resume.ID.String(), "resumeID", resume.ID.String())
	principal := models.Principal{UserID: uuid.New(), Role: models.RoleAdmin}
	req = req.WithContext(ctxWithPrincipal(req.Context(), principal))
	rec := httptest.NewRecorder()

	handler.downloadResume().ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("unexpected status: got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestDownloadResumeByIDUnknownIs404(t *testing.T) {
	resumes := &fakeResumeSource{byID: map[uuid.UUID]*models.Resume{}}
	handler := newDownloadHandler(resumes, newFakeBlobStore(), DownloadModeRedirect, time.Minute)

	unknown := uuid.New()
	req := requestWithURLParam(http.MethodGet, "/download/resume/"+unknown.String(), "resumeID", unknown.String())
	principal := models.Principal{UserID: uuid.New(), Role: models.RoleAdmin}
	req = req.WithContext(ctxWithPrincipal(req.Context(), principal))
	rec := httptest.NewRecorder()

	handler.downloadResume().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusNotFound)
	}
}

// requestWithURLParam builds a request carrying a chi route parameter.
func requestWithURLParam(method, target, key, value string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}
