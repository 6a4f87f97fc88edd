package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/jmorel/portfolio-cms-backend/database"
	"github.com/jmorel/portfolio-cms-backend/errs"
	"github.com/jmorel/portfolio-cms-backend/models"
	"github.com/jmorel/portfolio-cms-backend/services"
)

type profileHandler struct {
	responder       Responder
	logger          zerolog.Logger
	userRepo        *database.UserRepo
	educationRepo   *database.EducationRepo
	experienceRepo  *database.ExperienceRepo
	testimonialRepo *database.TestimonialRepo
	swapper         *services.MediaSwapper
	revalidator     *services.Revalidator
}

func newProfileHandler(
	userRepo *database.UserRepo,
	educationRepo *database.EducationRepo,
	experienceRepo *database.ExperienceRepo,
	testimonialRepo *database.TestimonialRepo,
	swapper *services.MediaSwapper,
	revalidator *services.Revalidator,
) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		userRepo:        userRepo,
		educationRepo:   educationRepo,
		experienceRepo:  experienceRepo,
		testimonialRepo: testimonialRepo,
		swapper:         swapper,
		revalidator:     revalidator,
	}
}

// AboutPage aggregates everything the public About page renders
type AboutPage struct {
	Profile      *models.User          `json:"profile"`
	Education    []*models.Education   `json:"education"`
	Experience   []*models.Experience  `json:"experience"`
	Testimonials []*models.Testimonial `json:"testimonials"`
}

// getProfile retrieves the admin profile
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} models.User "Admin profile"
// @Failure 404 {object} ErrorResponse "Not Found - No admin account"
// @Router /profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.userRepo.FindAdmin()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "user", err))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}

// updateProfile updates the admin profile
// @Summary Update profile
// @Description Updates the admin profile; a changed profile image releases the old blob
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body ProfileInput true "Profile data"
// @Success 200 {object} models.User "Updated profile"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failed"
// @Router /profile [put]
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.userRepo.FindAdmin()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "user", err))
			return
		}

		var in ProfileInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		if user.Image != nil && (in.Image == nil || *in.Image != *user.Image) {
			oldID := services.PublicIDFromURL(*user.Image)
			if err := h.swapper.RemoveByPublicID(r.Context(), oldID); err != nil {
				h.logger.Error().Err(err).Str("publicId", oldID).Msg("Failed to release old profile image")
			}
		}

		socialLinks, err := json.Marshal(in.SocialLinks)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid social links"))
			return
		}

		user.Name = in.Name
		user.Image = in.Image
		user.Tagline = in.Tagline
		user.Bio = in.Bio
		user.Skills = datatypes.JSONSlice[string](in.Skills)
		user.SocialLinks = datatypes.JSON(socialLinks)

		if err := h.userRepo.Update(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update profile", "user", err))
			return
		}

		h.revalidator.Revalidate("/", "/about", "/dashboard/profile")

		h.responder.WriteJSON(w, user)
	}
}

// getAbout serves the public About page aggregate
// @Summary Get the public About page
// @Description Aggregates the profile, education, experience and testimonials in one response
// @Tags Profile
// @Produce json
// @Success 200 {object} AboutPage "About page content"
// @Router /public/about [get]
func (h profileHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.userRepo.FindAdmin()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "user", err))
			return
		}

		education, err := h.educationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find education entries", "education", err))
			return
		}

		experience, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience entries", "experience", err))
			return
		}

		testimonials, err := h.testimonialRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find testimonials", "testimonials", err))
			return
		}

		// Strip account fields the public page has no business seeing.
		user.Email = ""

		h.responder.WriteJSON(w, AboutPage{
			Profile:      user,
			Education:    education,
			Experience:   experience,
			Testimonials: testimonials,
		})
	}
}
