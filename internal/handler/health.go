package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a "system" endpoint that external systems can use to
// verify the service is alive.
//
// This API has no external dependencies (no database, no cache), so there
// are no sub-checks: if the process answers, it is healthy.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns service health status.
//
// Response includes:
//   - overall status (always "healthy" while the process serves requests)
//   - timestamp (UTC)
//   - environment (from config)
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
