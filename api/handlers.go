package api

import (
	"time"

	"github.com/jmorel/portfolio-cms-backend/config"
	"github.com/jmorel/portfolio-cms-backend/database"
	"github.com/jmorel/portfolio-cms-backend/services"
	"github.com/jmorel/portfolio-cms-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, blobs storage.BlobStore, cfg map[string]string) *routeHandlers {
	swapper := services.NewMediaSwapper(blobs, database.MediaRepo())
	revalidator := services.NewRevalidator(config.GetString(cfg, "REVALIDATE_ENDPOINT", ""))
	notifier := services.NewNotifier(cfg)
	reconciler := services.NewReconciler(blobs, database.MediaRepo())

	downloadMode := config.GetString(cfg, "DOWNLOAD_MODE", DownloadModeRedirect)
	presignTTL := config.GetDuration(cfg, "DOWNLOAD_URL_TTL", 15*time.Minute)

	return &routeHandlers{
		uploadHandler:      newUploadHandler(blobs, database.MediaRepo()),
		downloadHandler:    newDownloadHandler(database.ResumeRepo(), blobs, downloadMode, presignTTL),
		postHandler:        newPostHandler(database.PostRepo(), swapper, revalidator),
		projectHandler:     newProjectHandler(database.ProjectRepo(), database.MediaRepo(), swapper, revalidator),
		resumeHandler:      newResumeHandler(database.ResumeRepo(), database.MediaRepo(), swapper, revalidator),
		educationHandler:   newEducationHandler(database.EducationRepo(), revalidator),
		experienceHandler:  newExperienceHandler(database.ExperienceRepo(), revalidator),
		testimonialHandler: newTestimonialHandler(database.TestimonialRepo(), swapper, revalidator),
		profileHandler: newProfileHandler(
			database.UserRepo(),
			database.EducationRepo(),
			database.ExperienceRepo(),
			database.TestimonialRepo(),
			swapper,
			revalidator,
		),
		contactHandler:     newContactHandler(database.ContactMessageRepo(), notifier),
		inboxHandler:       newInboxHandler(database.ContactMessageRepo()),
		maintenanceHandler: newMaintenanceHandler(reconciler),
	}
}
