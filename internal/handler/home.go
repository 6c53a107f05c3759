package handler

import (
	"net/http"

	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HomeHandler serves the root endpoint.
type HomeHandler struct {
	Handler
}

// NewHomeHandler constructs a HomeHandler with access to shared app dependencies.
func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

// Home handles GET /.
//
// No inputs, no failure modes: a fixed status object so anyone poking the
// API root sees it is alive.
func (h *HomeHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"result": "OK"})
}
