package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/jmorel/portfolio-cms-backend/database"
	"github.com/jmorel/portfolio-cms-backend/errs"
	"github.com/jmorel/portfolio-cms-backend/models"
	"github.com/jmorel/portfolio-cms-backend/services"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	mediaRepo   *database.MediaRepo
	swapper     *services.MediaSwapper
	revalidator *services.Revalidator
}

func newProjectHandler(projectRepo *database.ProjectRepo, mediaRepo *database.MediaRepo, swapper *services.MediaSwapper, revalidator *services.Revalidator) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		mediaRepo:   mediaRepo,
		swapper:     swapper,
		revalidator: revalidator,
	}
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// getAllProjects retrieves all projects
// @Summary Get all projects
// @Description Retrieves all non-deleted projects with cover image and gallery
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectCollection "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getProject retrieves a project by ID
// @Summary Get project
// @Description Retrieves a project by ID with cover image and gallery
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project details"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// getProjectBySlug retrieves a project by slug for the public site
// @Summary Get project by slug
// @Description Retrieves a non-deleted project by its slug
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} models.Project "Project details"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /public/project/{slug} [get]
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projectRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Creates a new project; a duplicate slug is reported as a field error
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body ProjectInput true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failed"
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var in ProjectInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		project := &models.Project{
			Title:       in.Title,
			Slug:        in.Slug,
			Description: in.Description,
			Content:     in.Content,
			Tags:        datatypes.JSONSlice[string](in.Tags),
			LiveURL:     in.LiveURL,
			RepoURL:     in.RepoURL,
			UserID:      principal.UserID,
			SeoTitle:    in.SeoTitle,
			SeoDesc:     in.SeoDesc,
		}

		if in.CoverImageURL != nil && *in.CoverImageURL != "" {
			cover, err := h.swapper.Replace(r.Context(), nil, *in.CoverImageURL, models.MediaImage)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("attach cover image", "media", err))
				return
			}
			project.CoverImageID = &cover.ID
		}

		if err := h.projectRepo.Add(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		if len(in.GalleryURLs) > 0 {
			gallery, err := h.trackGallery(in.GalleryURLs)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("track gallery media", "media", err))
				return
			}
			if err := h.projectRepo.ReplaceGallery(project, gallery); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("attach gallery", "project", err))
				return
			}
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		h.revalidator.Revalidate("/projects", "/projects/"+created.Slug, "/dashboard/projects")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Updates a project; replacing the cover image deletes the old blob first
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body ProjectInput true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failed"
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		var in ProjectInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		oldSlug := existing.Slug

		existing.Title = in.Title
		existing.Slug = in.Slug
		existing.Description = in.Description
		existing.Content = in.Content
		existing.Tags = datatypes.JSONSlice[string](in.Tags)
		existing.LiveURL = in.LiveURL
		existing.RepoURL = in.RepoURL
		existing.SeoTitle = in.SeoTitle
		existing.SeoDesc = in.SeoDesc

		if in.CoverImageURL == nil || *in.CoverImageURL == "" {
			if existing.CoverImage != nil {
				if err := h.swapper.Remove(r.Context(), existing.CoverImage); err != nil {
					h.responder.WriteError(w, wrapDatabaseError("remove cover image", "media", err))
					return
				}
			}
			existing.CoverImageID = nil
			existing.CoverImage = nil
		} else {
			cover, err := h.swapper.Replace(r.Context(), existing.CoverImage, *in.CoverImageURL, models.MediaImage)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("replace cover image", "media", err))
				return
			}
			existing.CoverImageID = &cover.ID
			existing.CoverImage = nil
		}

		gallery, err := h.trackGallery(in.GalleryURLs)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("track gallery media", "media", err))
			return
		}
		if err := h.projectRepo.ReplaceGallery(existing, gallery); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("replace gallery", "project", err))
			return
		}
		existing.Gallery = nil

		if err := h.projectRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.revalidator.Revalidate("/projects", "/projects/"+oldSlug, "/projects/"+updated.Slug, "/dashboard/projects")

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject soft-deletes a project
// @Summary Delete project
// @Description Marks a project deleted; gallery blobs are left to the reconciliation sweep
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if err := h.projectRepo.SoftDelete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.revalidator.Revalidate("/projects", "/projects/"+project.Slug, "/dashboard/projects")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// trackGallery makes sure every gallery URL has a media row and returns the
// rows in input order.
func (h projectHandler) trackGallery(urls []string) ([]models.Media, error) {
	gallery := make([]models.Media, 0, len(urls))
	for _, galleryURL := range urls {
		media := &models.Media{
			URL:      galleryURL,
			PublicID: services.PublicIDFromURL(galleryURL),
			Type:     models.MediaImage,
		}
		if err := h.mediaRepo.UpsertByPublicID(media); err != nil {
			return nil, err
		}
		if media.ID == uuid.Nil {
			tracked, err := h.mediaRepo.FindByPublicID(media.PublicID)
			if err != nil {
				return nil, err
			}
			media = tracked
		}
		gallery = append(gallery, *media)
	}
	return gallery, nil
}
