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

type postHandler struct {
	responder   Responder
	logger      zerolog.Logger
	postRepo    *database.PostRepo
	swapper     *services.MediaSwapper
	revalidator *services.Revalidator
}

func newPostHandler(postRepo *database.PostRepo, swapper *services.MediaSwapper, revalidator *services.Revalidator) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		postRepo:    postRepo,
		swapper:     swapper,
		revalidator: revalidator,
	}
}

// PostCollection represents multiple blog posts
type PostCollection struct {
	Posts []*models.Post `json:"posts"`
	Total int            `json:"total"`
}

// getAllPosts retrieves all posts for the dashboard
// @Summary Get all posts
// @Description Retrieves all non-deleted posts, drafts included
// @Tags Posts
// @Produce json
// @Success 200 {object} PostCollection "List of posts"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching posts"
// @Router /posts [get]
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find posts", "posts", err))
			return
		}

		h.responder.WriteJSON(w, PostCollection{Posts: posts, Total: len(posts)})
	}
}

// getPublishedPosts retrieves published posts for the public site
// @Summary Get published posts
// @Description Retrieves published, non-deleted posts for the public blog
// @Tags Posts
// @Produce json
// @Success 200 {object} PostCollection "List of published posts"
// @Router /public/posts [get]
func (h postHandler) getPublishedPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published posts", "posts", err))
			return
		}

		h.responder.WriteJSON(w, PostCollection{Posts: posts, Total: len(posts)})
	}
}

// getPost retrieves a post by ID
// @Summary Get post
// @Description Retrieves a post by ID, drafts included
// @Tags Posts
// @Produce json
// @Param postID path string true "Post ID" format(uuid)
// @Success 200 {object} models.Post "Post details"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found"
// @Router /post/{postID} [get]
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getPostBySlug retrieves a published post by slug for the public site
// @Summary Get published post by slug
// @Description Retrieves a published post by its slug
// @Tags Posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.Post "Post details"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found or unpublished"
// @Router /public/post/{slug} [get]
func (h postHandler) getPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.postRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createPost creates a new blog post
// @Summary Create post
// @Description Creates a new blog post; a duplicate slug is reported as a field error
// @Tags Posts
// @Accept json
// @Produce json
// @Param post body PostInput true "Post data"
// @Success 201 {object} models.Post "Created post"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failed"
// @Router /post [post]
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var in PostInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		post := &models.Post{
			Title:     in.Title,
			Slug:      in.Slug,
			Excerpt:   in.Excerpt,
			Content:   in.Content,
			Tags:      datatypes.JSONSlice[string](in.Tags),
			Published: in.Published,
			AuthorID:  principal.UserID,
			SeoTitle:  in.SeoTitle,
			SeoDesc:   in.SeoDesc,
		}

		if in.CoverImageURL != nil && *in.CoverImageURL != "" {
			cover, err := h.swapper.Replace(r.Context(), nil, *in.CoverImageURL, models.MediaImage)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("attach cover image", "media", err))
				return
			}
			post.CoverImageID = &cover.ID
		}

		if err := h.postRepo.Add(post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create post", "post", err))
			return
		}

		created, err := h.postRepo.FindByID(post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created post", "post", err))
			return
		}

		h.revalidator.Revalidate("/blog", "/blog/"+created.Slug, "/dashboard/posts")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updatePost updates an existing blog post
// @Summary Update post
// @Description Updates a post; replacing the cover image deletes the old blob first
// @Tags Posts
// @Accept json
// @Produce json
// @Param postID path string true "Post ID" format(uuid)
// @Param post body PostInput true "Updated post data"
// @Success 200 {object} models.Post "Updated post"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failed"
// @Router /post/{postID} [put]
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		existing, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		var in PostInput
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
		existing.Excerpt = in.Excerpt
		existing.Content = in.Content
		existing.Tags = datatypes.JSONSlice[string](in.Tags)
		existing.Published = in.Published
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

		if err := h.postRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update post", "post", err))
			return
		}

		updated, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated post", "post", err))
			return
		}

		h.revalidator.Revalidate("/blog", "/blog/"+oldSlug, "/blog/"+updated.Slug, "/dashboard/posts")

		h.responder.WriteJSON(w, updated)
	}
}

// deletePost soft-deletes a blog post
// @Summary Delete post
// @Description Marks a post deleted and unpublishes it; media rows are kept for restore
// @Tags Posts
// @Produce json
// @Param postID path string true "Post ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found"
// @Router /post/{postID} [delete]
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		if err := h.postRepo.SoftDelete(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete post", "post", err))
			return
		}

		h.revalidator.Revalidate("/blog", "/blog/"+post.Slug, "/dashboard/posts")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "post deleted successfully",
		})
	}
}
