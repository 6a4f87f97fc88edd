package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	uploadHandler      uploadHandler
	downloadHandler    downloadHandler
	postHandler        postHandler
	projectHandler     projectHandler
	resumeHandler      resumeHandler
	educationHandler   educationHandler
	experienceHandler  experienceHandler
	testimonialHandler testimonialHandler
	profileHandler     profileHandler
	contactHandler     contactHandler
	inboxHandler       inboxHandler
	maintenanceHandler maintenanceHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string              `json:"error" example:"Internal Server Error"`
	Status  string              `json:"status" example:"error"`
	Field   string              `json:"field,omitempty" example:"slug"`
	Fields  map[string][]string `json:"fields,omitempty"`
	Details string              `json:"details,omitempty" example:"Additional error details"`
	Cause   string              `json:"cause,omitempty" example:"Underlying error cause"`
}
