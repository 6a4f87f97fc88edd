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

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
	revalidator    *services.Revalidator
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo, revalidator *services.Revalidator) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
		revalidator:    revalidator,
	}
}

// getAllExperience retrieves all experience entries in display order
// @Summary Get experience entries
// @Tags Experience
// @Produce json
// @Success 200 {array} models.Experience "Experience entries"
// @Router /experience [get]
func (h experienceHandler) getAllExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience entries", "experience", err))
			return
		}

		h.responder.WriteJSON(w, entries)
	}
}

// createExperience creates a new experience entry
// @Summary Create experience entry
// @Tags Experience
// @Accept json
// @Produce json
// @Param entry body ExperienceInput true "Experience data"
// @Success 201 {object} models.Experience "Created entry"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failed"
// @Router /experience [post]
func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var in ExperienceInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		entry := &models.Experience{
			Title:       in.Title,
			Company:     in.Company,
			Location:    in.Location,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Description: in.Description,
			Order:       in.Order,
			UserID:      principal.UserID,
		}
		if err := h.experienceRepo.Add(entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create experience entry", "experience", err))
			return
		}

		h.revalidator.Revalidate("/about", "/dashboard/experience")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, entry)
	}
}

// updateExperience updates an existing experience entry
// @Summary Update experience entry
// @Tags Experience
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID" format(uuid)
// @Param entry body ExperienceInput true "Updated experience data"
// @Success 200 {object} models.Experience "Updated entry"
// @Failure 404 {object} ErrorResponse "Not Found - Entry not found"
// @Router /experience/{entryID} [put]
func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		existing, err := h.experienceRepo.FindByID(entryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience entry", "experience", err))
			return
		}

		var in ExperienceInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		existing.Title = in.Title
		existing.Company = in.Company
		existing.Location = in.Location
		existing.StartDate = in.StartDate
		existing.EndDate = in.EndDate
		existing.Description = in.Description
		existing.Order = in.Order

		if err := h.experienceRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update experience entry", "experience", err))
			return
		}

		h.revalidator.Revalidate("/about", "/dashboard/experience")

		h.responder.WriteJSON(w, existing)
	}
}

// deleteExperience soft-deletes an experience entry
// @Summary Delete experience entry
// @Tags Experience
// @Produce json
// @Param entryID path string true "Entry ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Entry not found"
// @Router /experience/{entryID} [delete]
func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		if _, err := h.experienceRepo.FindByID(entryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience entry", "experience", err))
			return
		}

		if err := h.experienceRepo.SoftDelete(entryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete experience entry", "experience", err))
			return
		}

		h.revalidator.Revalidate("/about", "/dashboard/experience")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "experience entry deleted successfully",
		})
	}
}
