package router

import (
	"net/http"

	"github.com/deppfellow/person-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes registers the business endpoints.
//
// Typed endpoints go through handler.Handle / handler.HandleOK, which bind
// and validate a fresh payload per request. Home and image upload register
// plain echo.HandlerFunc because they have no bindable payload.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	// Fixed status object, no inputs.
	r.GET("/", h.Home.Home)

	// Person resource.
	r.POST("/person/new", handler.Handle(h.Person.Handler, h.Person.CreatePerson, http.StatusCreated))
	r.GET("/person/detail", handler.HandleOK(h.Person.Handler, h.Person.ShowPersonDetail))
	r.GET("/person/detail/:person_id", handler.HandleOK(h.Person.Handler, h.Person.ShowPersonDetailByID))
	r.PUT("/person/:person_id", handler.HandleOK(h.Person.Handler, h.Person.UpdatePerson))

	// Form endpoints.
	r.POST("/login", handler.HandleOK(h.Auth.Handler, h.Auth.Login))
	r.POST("/contact", handler.HandleOK(h.Contact.Handler, h.Contact.Contact))

	// Multipart upload.
	r.POST("/post-image", h.Image.PostImage)
}
