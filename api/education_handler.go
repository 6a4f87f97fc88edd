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

type educationHandler struct {
	responder     Responder
	logger        zerolog.Logger
	educationRepo *database.EducationRepo
	revalidator   *services.Revalidator
}

func newEducationHandler(educationRepo *database.EducationRepo, revalidator *services.Revalidator) educationHandler {
	logger := log.With().Str("handlerName", "educationHandler").Logger()

	return educationHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		educationRepo: educationRepo,
		revalidator:   revalidator,
	}
}

// getAllEducation retrieves all education entries in display order
// @Summary Get education entries
// @Tags Education
// @Produce json
// @Success 200 {array} models.Education "Education entries"
// @Router /education [get]
func (h educationHandler) getAllEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.educationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find education entries", "education", err))
			return
		}

		h.responder.WriteJSON(w, entries)
	}
}

// createEducation creates a new education entry
// @Summary Create education entry
// @Tags Education
// @Accept json
// @Produce json
// @Param entry body EducationInput true "Education data"
// @Success 201 {object} models.Education "Created entry"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failed"
// @Router /education [post]
func (h educationHandler) createEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var in EducationInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		entry := &models.Education{
			School:      in.School,
			Degree:      in.Degree,
			Field:       in.Field,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Grade:       in.Grade,
			Description: in.Description,
			Order:       in.Order,
			UserID:      principal.UserID,
		}
		if err := h.educationRepo.Add(entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create education entry", "education", err))
			return
		}

		h.revalidator.Revalidate("/about", "/dashboard/education")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, entry)
	}
}

// updateEducation updates an existing education entry
// @Summary Update education entry
// @Tags Education
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID" format(uuid)
// @Param entry body EducationInput true "Updated education data"
// @Success 200 {object} models.Education "Updated entry"
// @Failure 404 {object} ErrorResponse "Not Found - Entry not found"
// @Router /education/{entryID} [put]
func (h educationHandler) updateEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		existing, err := h.educationRepo.FindByID(entryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find education entry", "education", err))
			return
		}

		var in EducationInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		existing.School = in.School
		existing.Degree = in.Degree
		existing.Field = in.Field
		existing.StartDate = in.StartDate
		existing.EndDate = in.EndDate
		existing.Grade = in.Grade
		existing.Description = in.Description
		existing.Order = in.Order

		if err := h.educationRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update education entry", "education", err))
			return
		}

		h.revalidator.Revalidate("/about", "/dashboard/education")

		h.responder.WriteJSON(w, existing)
	}
}

// deleteEducation soft-deletes an education entry
// @Summary Delete education entry
// @Tags Education
// @Produce json
// @Param entryID path string true "Entry ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Entry not found"
// @Router /education/{entryID} [delete]
func (h educationHandler) deleteEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		if _, err := h.educationRepo.FindByID(entryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find education entry", "education", err))
			return
		}

		if err := h.educationRepo.SoftDelete(entryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete education entry", "education", err))
			return
		}

		h.revalidator.Revalidate("/about", "/dashboard/education")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "education entry deleted successfully",
		})
	}
}
