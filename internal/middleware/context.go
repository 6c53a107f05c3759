package middleware

import (
	"context"

	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is used as the key for storing the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer is a middleware helper that enriches request context.
//
// It builds a request-scoped logger with useful correlation fields:
//   - request_id
//   - method, path, ip
//
// It then stores that logger in:
//   - Echo context (c.Set)
//   - Go request context (context.WithValue)
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a new ContextEnhancer using the app Server container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware.
//
// For every request, it:
//  1. gets the request ID (from the RequestID middleware)
//  2. creates a child logger with request fields
//  3. stores that logger in Echo context + Go context
//
// This must run AFTER RequestID in the chain, otherwise request_id is empty.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // Echo route template (e.g. "/person/:person_id"), not raw URL
				Str("ip", c.RealIP()).
				Logger()

			// Store the enhanced logger in Echo context for handlers.
			c.Set(LoggerKey, &contextLogger)

			// ALSO store the logger pointer into the Go request context,
			// so code that only sees context.Context can fetch it.
			// The string key mirrors the echo context key on purpose.
			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)

			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
//
// If EnhanceContext middleware didn't run, it returns a no-op logger.
// This prevents nil pointer crashes, but also hides logs if misconfigured.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
