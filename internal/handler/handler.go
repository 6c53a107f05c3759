// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and builds the response. There is no
// service/repository layer underneath: every endpoint is a
// stateless echo of its validated input, so handlers are the
// whole business logic.
package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (e.g. PersonHandler, AuthHandler) so
// they can access shared resources via *server.Server (config, logger).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// Note: it returns the struct by value. This is fine because the struct only
// contains a pointer field (*server.Server). Copying it is cheap and still
// points to the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that:
//
//   - receives a validated request payload (Req)
//   - returns a response (Res) or an error
//
// Req is always a pointer type (see validatablePtr) because Echo's Bind
// requires a pointer to populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// validatablePtr constrains Req to "pointer to T that implements Validatable".
//
// The pointer constraint lets the pipeline allocate a FRESH payload per
// request with new(T), instead of sharing one instance across concurrent
// requests.
type validatablePtr[T any] interface {
	*T
	validation.Validatable
}

// handleRequest is the shared execution pipeline for all typed handlers.
//
// It eliminates endpoint boilerplate by centralizing:
//
//   - request binding + validation
//   - structured logging (with request context)
//   - timing metrics (validation duration, handler duration, total duration)
//   - JSON response writing
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	status int,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	// Use the context-enhanced logger set by ContextEnhancer middleware.
	// It already includes correlation fields (request_id, ip).
	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	// BindAndValidate does:
	//   - c.Bind(payload) to populate req from path/query/body/form
	//   - payload.Validate() which applies the validator tags
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		// Return error to let the global error handler format the response.
		return err
	}

	validationDuration := time.Since(validationStart)

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		return err
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// Handle wraps a typed handler with binding, validation, error handling,
// logging, and metrics.
//
// It returns an echo.HandlerFunc so it can be registered directly on routes.
//
// Usage pattern (typical):
//
//	r.POST("/person/new", handler.Handle(h.Handler, h.CreatePerson, http.StatusCreated))
func Handle[T any, Req validatablePtr[T], Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Fresh payload per request; never share binding targets across
		// concurrent requests.
		req := Req(new(T))

		return handleRequest(c, req, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, status)
	}
}

// HandleOK is Handle with the common 200 status.
func HandleOK[T any, Req validatablePtr[T], Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
) echo.HandlerFunc {
	return Handle[T, Req, Res](h, handler, http.StatusOK)
}
