// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware chain and all routes.
//
// Middleware order matters:
//  1. Recover     — catch panics from everything below
//  2. RequestID   — correlation ID must exist before the context enhancer
//  3. EnhanceContext — request-scoped logger built from the request ID
//  4. RequestLogger  — logs with the enhanced logger
//  5. CORS, Secure   — header-level concerns
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()

	// Echo's own banner/port lines are noise next to zerolog output.
	r.HideBanner = true
	r.HidePort = true

	// Every error from any handler or middleware funnels through here.
	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Global.Recover())
	r.Use(middleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.CORS())
	r.Use(m.Global.Secure())

	registerAPIRoutes(r, h)
	registerSystemRoutes(r, h)

	return r
}
