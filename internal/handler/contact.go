package handler

import (
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// adsCookieName is the cookie the contact form reads.
//
// The value is never used for anything beyond a debug log line; it is
// accepted for wire-compatibility with clients that send it.
const adsCookieName = "ads"

// ContactHandler serves the contact form endpoint.
type ContactHandler struct {
	Handler
}

// NewContactHandler constructs a ContactHandler with access to shared app dependencies.
func NewContactHandler(s *server.Server) *ContactHandler {
	return &ContactHandler{
		Handler: NewHandler(s),
	}
}

// ContactRequest carries the form fields of POST /contact.
//
// The email check is syntactic only; nothing verifies deliverability.
type ContactRequest struct {
	FirstName string `form:"first_name" validate:"required,min=1,max=20"`
	LastName  string `form:"last_name" validate:"required,min=1,max=20"`
	Email     string `form:"email" validate:"required,email"`
	Message   string `form:"message" validate:"required,min=20"`
}

func (r *ContactRequest) Validate() error {
	return validation.Struct(r)
}

// Contact validates the form and returns the caller's raw User-Agent value.
//
// The header and the ads cookie are both optional.
func (h *ContactHandler) Contact(c echo.Context, req *ContactRequest) (string, error) {
	userAgent := c.Request().UserAgent()

	if cookie, err := c.Cookie(adsCookieName); err == nil {
		middleware.GetLogger(c).Debug().
			Str("ads_cookie", cookie.Value).
			Msg("contact form submitted with ads cookie")
	}

	return userAgent, nil
}
