package handler

import (
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// loginSuccessMessage is the fixed message returned on every login.
const loginSuccessMessage = "Login successfully!"

// AuthHandler serves the login endpoint.
//
// There is no credential store behind it: the password is accepted,
// validated for presence, and discarded. The endpoint exists to exercise
// form-field handling, not to authenticate anyone.
type AuthHandler struct {
	Handler
}

// NewAuthHandler constructs an AuthHandler with access to shared app dependencies.
func NewAuthHandler(s *server.Server) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
	}
}

// LoginRequest carries the form fields of POST /login.
type LoginRequest struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// LoginOut is the login response: only the username plus a fixed message.
// The password never leaves the handler.
type LoginOut struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// Login echoes the username back with the fixed success message.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (*LoginOut, error) {
	return &LoginOut{
		Username: req.Username,
		Message:  loginSuccessMessage,
	}, nil
}
