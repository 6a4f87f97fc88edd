package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes serves the public website: published content, the About
// aggregate, the contact form and the default resume download.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/public/posts", handlers.postHandler.getPublishedPosts())
		r.Get("/public/post/{slug}", handlers.postHandler.getPostBySlug())
		r.Get("/public/projects", handlers.projectHandler.getAllProjects())
		r.Get("/public/project/{slug}", handlers.projectHandler.getProjectBySlug())
		r.Get("/public/about", handlers.profileHandler.getAbout())

		r.Post("/contact", handlers.contactHandler.submitMessage())

		// Download gateway. The default resume is public; a specific resume
		// checks for a session itself, so the auth here is optional.
		r.Get("/download/resume", handlers.downloadHandler.downloadDefaultResume())
		r.With(authMiddleware.withPrincipal).
			Get("/download/resume/{resumeID}", handlers.downloadHandler.downloadResume())
	})
}

// setupDashboardRoutes serves the CMS dashboard; everything requires an admin
// session.
func setupDashboardRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.requireAdmin)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Upload gateway
		r.Post("/upload", handlers.uploadHandler.uploadFile())

		// Post Handler endpoints
		r.Get("/posts", handlers.postHandler.getAllPosts())
		r.Get("/post/{postID}", handlers.postHandler.getPost())
		r.Post("/post", handlers.postHandler.createPost())
		r.Put("/post/{postID}", handlers.postHandler.updatePost())
		r.Delete("/post/{postID}", handlers.postHandler.deletePost())

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		// Resume Handler endpoints
		r.Get("/resumes", handlers.resumeHandler.getAllResumes())
		r.Post("/resume", handlers.resumeHandler.createResume())
		r.Delete("/resume/{resumeID}", handlers.resumeHandler.deleteResume())
		r.Post("/resume/{resumeID}/default", handlers.resumeHandler.setDefaultResume())

		// Education Handler endpoints
		r.Get("/education", handlers.educationHandler.getAllEducation())
		r.Post("/education", handlers.educationHandler.createEducation())
		r.Put("/education/{entryID}", handlers.educationHandler.updateEducation())
		r.Delete("/education/{entryID}", handlers.educationHandler.deleteEducation())

		// Experience Handler endpoints
		r.Get("/experience", handlers.experienceHandler.getAllExperience())
		r.Post("/experience", handlers.experienceHandler.createExperience())
		r.Put("/experience/{entryID}", handlers.experienceHandler.updateExperience())
		r.Delete("/experience/{entryID}", handlers.experienceHandler.deleteExperience())

		// Testimonial Handler endpoints
		r.Get("/testimonials", handlers.testimonialHandler.getAllTestimonials())
		r.Post("/testimonial", handlers.testimonialHandler.createTestimonial())
		r.Put("/testimonial/{testimonialID}", handlers.testimonialHandler.updateTestimonial())
		r.Delete("/testimonial/{testimonialID}", handlers.testimonialHandler.deleteTestimonial())

		// Profile Handler endpoints
		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Put("/profile", handlers.profileHandler.updateProfile())

		// Inbox Handler endpoints
		r.Get("/messages", handlers.inboxHandler.getAllMessages())
		r.Get("/message/{messageID}", handlers.inboxHandler.getMessage())
		r.Patch("/message/{messageID}/status", handlers.inboxHandler.updateMessageStatus())
		r.Delete("/message/{messageID}", handlers.inboxHandler.deleteMessage())

		// Maintenance endpoints
		r.Post("/admin/reconcile", handlers.maintenanceHandler.runReconciliation())
	})
}
