package handler

import (
	"github.com/deppfellow/person-api/internal/server"
)

// Handlers is a container that groups all HTTP handlers.
//
// Similar to Middlewares: one struct keeps router setup clean, you pass a
// single object around instead of many. Handlers represent the HTTP layer:
// parse input, validate, build the response.
type Handlers struct {
	Home    *HomeHandler    // Home serves the root status endpoint.
	Person  *PersonHandler  // Person serves create/detail/update person endpoints.
	Auth    *AuthHandler    // Auth serves the form-based login endpoint.
	Contact *ContactHandler // Contact serves the contact form endpoint.
	Image   *ImageHandler   // Image serves the image upload endpoint.
	Health  *HealthHandler  // Health serves service health endpoints (liveness/readiness).
	OpenAPI *OpenAPIHandler // OpenAPI serves API documentation (OpenAPI spec / docs UI).
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Home:    NewHomeHandler(s),
		Person:  NewPersonHandler(s),
		Auth:    NewAuthHandler(s),
		Contact: NewContactHandler(s),
		Image:   NewImageHandler(s),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
