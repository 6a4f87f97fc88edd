package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jmorel/portfolio-cms-backend/errs"
	"github.com/jmorel/portfolio-cms-backend/models"
	"github.com/jmorel/portfolio-cms-backend/services"
	"github.com/jmorel/portfolio-cms-backend/storage"
)

// Download modes. Redirect hands the visitor a short-lived signed URL;
// proxy relays the bytes through this process.
const (
	DownloadModeRedirect = "redirect"
	DownloadModeProxy    = "proxy"
)

// resumeSource is the slice of the resume repo the gateway needs.
type resumeSource interface {
	FindByID(id uuid.UUID) (*models.Resume, error)
	FindDefaultPublic() (*models.Resume, error)
}

type downloadHandler struct {
	responder  Responder
	logger     zerolog.Logger
	resumes    resumeSource
	blobs      storage.BlobStore
	mode       string
	presignTTL time.Duration
}

func newDownloadHandler(resumes resumeSource, blobs storage.BlobStore, mode string, presignTTL time.Duration) downloadHandler {
	logger := log.With().Str("handlerName", "downloadHandler").Logger()

	if mode != DownloadModeProxy {
		mode = DownloadModeRedirect
	}

	return downloadHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		resumes:    resumes,
		blobs:      blobs,
		mode:       mode,
		presignTTL: presignTTL,
	}
}

// downloadDefaultResume serves the public default resume
// @Summary Download the default resume
// @Description Serves the default public resume as an attachment, either by signed redirect or by streaming
// @Tags Downloads
// @Produce octet-stream
// @Success 302 {string} string "Redirect to a signed download URL"
// @Failure 404 {object} ErrorResponse "Not Found - No default resume available"
// @Router /download/resume [get]
func (h downloadHandler) downloadDefaultResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resume, err := h.resumes.FindDefaultPublic()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.responder.WriteError(w, errs.NewNotFoundError("no default resume available"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find default resume", "resume", err))
			return
		}

		h.serveResume(w, r, resume)
	}
}

// downloadResume serves a specific resume to an authenticated caller
// @Summary Download a resume by ID
// @Description Serves a specific resume as an attachment; requires a valid session
// @Tags Downloads
// @Produce octet-stream
// @Param resumeID path string true "Resume ID" format(uuid)
// @Success 302 {string} string "Redirect to a signed download URL"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid session"
// @Failure 404 {object} ErrorResponse "Not Found - Resume not found"
// @Router /download/resume/{resumeID} [get]
func (h downloadHandler) downloadResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Specific resumes are not public; only the default is.
		if _, err := ctxGetPrincipal(r.Context()); err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		resumeIDStr := chi.URLParam(r, "resumeID")
		resumeID, err := uuid.Parse(resumeIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid resumeID"))
			return
		}

		resume, err := h.resumes.FindByID(resumeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find resume", "resume", err))
			return
		}
		if resume.IsDeleted {
			h.responder.WriteError(w, errs.NewNotFoundError("resume not found"))
			return
		}

		h.serveResume(w, r, resume)
	}
}

func (h downloadHandler) serveResume(w http.ResponseWriter, r *http.Request, resume *models.Resume) {
	// A resume without its file metadata is unservable; the filename in the
	// attachment disposition comes from the stored original name only.
	if resume.Media == nil || resume.Media.OriginalFilename == nil || *resume.Media.OriginalFilename == "" {
		h.responder.WriteError(w, errs.NewNotFoundError("resume file not found"))
		return
	}

	publicID := resume.Media.PublicID
	if publicID == "" {
		publicID = services.PublicIDFromURL(resume.FileURL)
	}
	filename := *resume.Media.OriginalFilename

	if h.mode == DownloadModeProxy {
		h.proxyObject(w, r, publicID, filename)
		return
	}

	signedURL, err := h.blobs.PresignDownload(r.Context(), publicID, filename, h.presignTTL)
	if err != nil {
		h.logger.Error().Err(err).Str("publicId", publicID).Msg("Failed to presign download URL")
		h.responder.WriteError(w, errs.NewInternalError("failed to prepare download"))
		return
	}

	http.Redirect(w, r, signedURL, http.StatusFound)
}

// proxyObject relays the blob through this process. The body is copied
// straight through; nothing is buffered or inspected.
func (h downloadHandler) proxyObject(w http.ResponseWriter, r *http.Request, publicID, filename string) {
	object, err := h.blobs.Get(r.Context(), publicID)
	if err != nil {
		h.logger.Error().Err(err).Str("publicId", publicID).Msg("Failed to fetch blob from storage provider")
		h.responder.WriteError(w, errs.NewNotFoundError("resume file not found"))
		return
	}
	defer object.Body.Close()

	contentType := object.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if object.ContentLength > 0 {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", object.ContentLength))
	}

	if _, err := io.Copy(w, object.Body); err != nil {
		h.logger.Error().Err(err).Str("publicId", publicID).Msg("Download stream interrupted")
	}
}
