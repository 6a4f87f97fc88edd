package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmorel/portfolio-cms-backend/errs"
	"github.com/jmorel/portfolio-cms-backend/models"
	"github.com/jmorel/portfolio-cms-backend/storage"
)

// maxUploadBytes bounds a single upload; resumes and cover images are small.
const maxUploadBytes = 25 << 20

// mediaTracker is the slice of the media repo the gateway needs.
type mediaTracker interface {
	Add(media *models.Media) error
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	blobs     storage.BlobStore
	mediaRepo mediaTracker
}

func newUploadHandler(blobs storage.BlobStore, mediaRepo mediaTracker) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blobs:     blobs,
		mediaRepo: mediaRepo,
	}
}

// UploadResponse mirrors what the dashboard upload widget expects
type UploadResponse struct {
	SecureURL        string `json:"secure_url"`
	PublicID         string `json:"public_id"`
	OriginalFilename string `json:"original_filename,omitempty"`
}

// uploadFile streams a multipart file to the storage provider
// @Summary Upload a file
// @Description Accepts a multipart file, classifies it by MIME type and streams it to the storage provider
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} UploadResponse "Uploaded file location"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or oversized file"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Storage provider rejected the upload"
// @Router /upload [post]
func (h uploadHandler) uploadFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read multipart file")
			h.responder.WriteError(w, errs.NewBadRequestError("missing or invalid file field"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		// The file is relayed as an opaque byte stream; only the MIME type
		// steers which resource class the provider stores it under.
		result, err := h.blobs.Upload(r.Context(), header.Filename, contentType, header.Size, file)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Storage provider rejected upload")
			h.responder.WriteError(w, errs.NewUploadError(err))
			return
		}

		media := &models.Media{
			URL:              result.URL,
			PublicID:         result.PublicID,
			OriginalFilename: &result.OriginalFilename,
			Type:             mediaTypeForContentType(contentType),
		}
		if err := h.mediaRepo.Add(media); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("track uploaded media", "media", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, UploadResponse{
			SecureURL:        result.URL,
			PublicID:         result.PublicID,
			OriginalFilename: result.OriginalFilename,
		})
	}
}

// mediaTypeForContentType maps a MIME type onto the stored media class.
func mediaTypeForContentType(contentType string) models.MediaType {
	if strings.Contains(contentType, "pdf") {
		return models.MediaPDF
	}
	if storage.KindForContentType(contentType) == storage.KindRaw {
		return models.MediaRaw
	}
	return models.MediaImage
}
