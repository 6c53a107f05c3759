package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the OpenAPI UI for testing APIs.
//
// The UI is a static HTML file (openapi.html) that loads JS from a CDN and
// reads the OpenAPI JSON document from the static folder (openapi.json).
// The handler reads the HTML template and serves it as HTML with caching
// disabled, so doc updates appear immediately during development.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler with access to shared dependencies.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI reads static/openapi.html and serves it as an HTML response.
//
// Cache-Control is set to "no-cache" so clients do not reuse an old docs UI.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile("static/openapi.html")

	// Prevent caching of the docs UI page.
	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
