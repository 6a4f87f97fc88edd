package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmorel/portfolio-cms-backend/database"
	"github.com/jmorel/portfolio-cms-backend/errs"
	"github.com/jmorel/portfolio-cms-backend/models"
	"github.com/jmorel/portfolio-cms-backend/services"
)

type resumeHandler struct {
	responder   Responder
	logger      zerolog.Logger
	resumeRepo  *database.ResumeRepo
	mediaRepo   *database.MediaRepo
	swapper     *services.MediaSwapper
	revalidator *services.Revalidator
}

func newResumeHandler(resumeRepo *database.ResumeRepo, mediaRepo *database.MediaRepo, swapper *services.MediaSwapper, revalidator *services.Revalidator) resumeHandler {
	logger := log.With().Str("handlerName", "resumeHandler").Logger()

	return resumeHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		resumeRepo:  resumeRepo,
		mediaRepo:   mediaRepo,
		swapper:     swapper,
		revalidator: revalidator,
	}
}

// ResumeCollection represents the resume list shown in the dashboard
type ResumeCollection struct {
	Resumes []*models.Resume `json:"resumes"`
	Total   int              `json:"total"`
}

// getAllResumes retrieves all resumes
// @Summary Get all resumes
// @Description Retrieves every non-deleted resume, newest first
// @Tags Resumes
// @Produce json
// @Success 200 {object} ResumeCollection "List of resumes"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching resumes"
// @Router /resumes [get]
func (h resumeHandler) getAllResumes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumes, err := h.resumeRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find resumes", "resumes", err))
			return
		}

		h.responder.WriteJSON(w, ResumeCollection{Resumes: resumes, Total: len(resumes)})
	}
}

// createResume registers an uploaded document as a resume
// @Summary Create resume
// @Description Registers an already uploaded document as a resume entry
// @Tags Resumes
// @Accept json
// @Produce json
// @Param resume body ResumeInput true "Resume data"
// @Success 201 {object} models.Resume "Created resume"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failed"
// @Router /resume [post]
func (h resumeHandler) createResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var in ResumeInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		// The upload endpoint already created the media row; attach it.
		media := &models.Media{
			URL:              in.FileURL,
			PublicID:         in.PublicID,
			OriginalFilename: in.OriginalFilename,
			Type:             models.MediaPDF,
		}
		if err := h.mediaRepo.UpsertByPublicID(media); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("track resume media", "media", err))
			return
		}
		if media.ID == uuid.Nil {
			tracked, err := h.mediaRepo.FindByPublicID(in.PublicID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find resume media", "media", err))
				return
			}
			media = tracked
		}

		isPublic := true
		if in.IsPublic != nil {
			isPublic = *in.IsPublic
		}

		resume := &models.Resume{
			Title:    in.Title,
			FileURL:  in.FileURL,
			MediaID:  &media.ID,
			UserID:   principal.UserID,
			IsPublic: isPublic,
		}
		if err := h.resumeRepo.Add(resume); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create resume", "resume", err))
			return
		}

		created, err := h.resumeRepo.FindByID(resume.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created resume", "resume", err))
			return
		}

		h.revalidator.Revalidate("/resume", "/dashboard/resumes")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// deleteResume soft-deletes a resume and removes its stored document
// @Summary Delete resume
// @Description Deletes the stored document from the provider, then soft-deletes the resume row
// @Tags Resumes
// @Produce json
// @Param resumeID path string true "Resume ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Resume not found"
// @Router /resume/{resumeID} [delete]
func (h resumeHandler) deleteResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumeID, err := uuid.Parse(chi.URLParam(r, "resumeID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid resumeID"))
			return
		}

		resume, err := h.resumeRepo.FindByID(resumeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find resume", "resume", err))
			return
		}

		// Remote blob first, row second. A half-finished delete leaves an
		// orphan for the reconciliation sweep, never a dangling reference.
		if err := h.swapper.Remove(r.Context(), resume.Media); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete resume media", "media", err))
			return
		}

		if err := h.resumeRepo.SoftDelete(resumeID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete resume", "resume", err))
			return
		}

		h.revalidator.Revalidate("/resume", "/dashboard/resumes")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "resume deleted successfully",
		})
	}
}

// setDefaultResume promotes a resume to be the public default
// @Summary Set default resume
// @Description Atomically clears the previous default and promotes the given resume
// @Tags Resumes
// @Produce json
// @Param resumeID path string true "Resume ID" format(uuid)
// @Success 200 {object} models.Resume "The new default resume"
// @Failure 404 {object} ErrorResponse "Not Found - Resume not found or deleted"
// @Router /resume/{resumeID}/default [post]
func (h resumeHandler) setDefaultResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumeID, err := uuid.Parse(chi.URLParam(r, "resumeID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid resumeID"))
			return
		}

		if err := h.resumeRepo.SetDefault(resumeID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("set default resume", "resume", err))
			return
		}

		resume, err := h.resumeRepo.FindByID(resumeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find resume", "resume", err))
			return
		}

		h.revalidator.Revalidate("/resume")

		h.responder.WriteJSON(w, resume)
	}
}
