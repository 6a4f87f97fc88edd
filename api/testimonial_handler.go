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

type testimonialHandler struct {
	responder       Responder
	logger          zerolog.Logger
	testimonialRepo *database.TestimonialRepo
	swapper         *services.MediaSwapper
	revalidator     *services.Revalidator
}

func newTestimonialHandler(testimonialRepo *database.TestimonialRepo, swapper *services.MediaSwapper, revalidator *services.Revalidator) testimonialHandler {
	logger := log.With().Str("handlerName", "testimonialHandler").Logger()

	return testimonialHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		testimonialRepo: testimonialRepo,
		swapper:         swapper,
		revalidator:     revalidator,
	}
}

// getAllTestimonials retrieves all testimonials in display order
// @Summary Get testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {array} models.Testimonial "Testimonials"
// @Router /testimonials [get]
func (h testimonialHandler) getAllTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonials, err := h.testimonialRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find testimonials", "testimonials", err))
			return
		}

		h.responder.WriteJSON(w, testimonials)
	}
}

// createTestimonial creates a new testimonial
// @Summary Create testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param testimonial body TestimonialInput true "Testimonial data"
// @Success 201 {object} models.Testimonial "Created testimonial"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failed"
// @Router /testimonial [post]
func (h testimonialHandler) createTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var in TestimonialInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		testimonial := &models.Testimonial{
			Name:      in.Name,
			Role:      in.Role,
			Company:   in.Company,
			Message:   in.Message,
			AvatarURL: in.AvatarURL,
			Order:     in.Order,
			UserID:    principal.UserID,
		}
		if err := h.testimonialRepo.Add(testimonial); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create testimonial", "testimonial", err))
			return
		}

		h.revalidator.Revalidate("/", "/dashboard/testimonials")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, testimonial)
	}
}

// updateTestimonial updates an existing testimonial
// @Summary Update testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param testimonialID path string true "Testimonial ID" format(uuid)
// @Param testimonial body TestimonialInput true "Updated testimonial data"
// @Success 200 {object} models.Testimonial "Updated testimonial"
// @Failure 404 {object} ErrorResponse "Not Found - Testimonial not found"
// @Router /testimonial/{testimonialID} [put]
func (h testimonialHandler) updateTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid testimonialID"))
			return
		}

		existing, err := h.testimonialRepo.FindByID(testimonialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find testimonial", "testimonial", err))
			return
		}

		var in TestimonialInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		// Swapping the avatar releases the old blob before the row points
		// anywhere new.
		if existing.AvatarURL != nil && (in.AvatarURL == nil || *in.AvatarURL != *existing.AvatarURL) {
			oldID := services.PublicIDFromURL(*existing.AvatarURL)
			if err := h.swapper.RemoveByPublicID(r.Context(), oldID); err != nil {
				h.logger.Error().Err(err).Str("publicId", oldID).Msg("Failed to release old avatar")
			}
		}

		existing.Name = in.Name
		existing.Role = in.Role
		existing.Company = in.Company
		existing.Message = in.Message
		existing.AvatarURL = in.AvatarURL
		existing.Order = in.Order

		if err := h.testimonialRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update testimonial", "testimonial", err))
			return
		}

		h.revalidator.Revalidate("/", "/dashboard/testimonials")

		h.responder.WriteJSON(w, existing)
	}
}

// deleteTestimonial soft-deletes a testimonial
// @Summary Delete testimonial
// @Tags Testimonials
// @Produce json
// @Param testimonialID path string true "Testimonial ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Testimonial not found"
// @Router /testimonial/{testimonialID} [delete]
func (h testimonialHandler) deleteTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid testimonialID"))
			return
		}

		if _, err := h.testimonialRepo.FindByID(testimonialID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find testimonial", "testimonial", err))
			return
		}

		if err := h.testimonialRepo.SoftDelete(testimonialID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete testimonial", "testimonial", err))
			return
		}

		h.revalidator.Revalidate("/", "/dashboard/testimonials")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "testimonial deleted successfully",
		})
	}
}
