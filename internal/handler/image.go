package handler

import (
	"io"
	"math"
	"net/http"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
)

// imageFormField is the multipart field name clients upload under.
const imageFormField = "image"

// ImageHandler serves the image upload endpoint.
type ImageHandler struct {
	Handler
}

// NewImageHandler constructs an ImageHandler with access to shared app dependencies.
func NewImageHandler(s *server.Server) *ImageHandler {
	return &ImageHandler{
		Handler: NewHandler(s),
	}
}

// PostImage handles POST /post-image.
//
// It reads the entire uploaded file into memory to compute its size in
// kilobytes (rounded to 2 decimals), then reports filename, declared
// content type, and size. The file is not stored anywhere.
//
// This endpoint bypasses the typed Handle pipeline because its input is a
// multipart file, not a bindable struct; it still uses the request-scoped
// logger and the shared error shapes.
//
// NOTE: no size limit is enforced here beyond the server's body limits, so
// the full-file read is only as bounded as the deployment makes it.
func (h *ImageHandler) PostImage(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("route", c.Path()).
		Logger()

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		logger.Warn().Err(err).Msg("image file missing from multipart form")
		return errs.NewUnprocessableEntityError("Validation failed", true, []errs.FieldError{
			{Field: imageFormField, Error: "is required"},
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Msg("failed to open uploaded file")
		return errs.NewInternalServerError()
	}
	defer src.Close()

	// Full blocking read; size comes from the actual bytes received,
	// not from the (client-supplied) Content-Length.
	data, err := io.ReadAll(src)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read uploaded file")
		return errs.NewInternalServerError()
	}

	sizeKB := math.Round(float64(len(data))/1024*100) / 100

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("content_type", fileHeader.Header.Get("Content-Type")).
		Float64("size_kb", sizeKB).
		Msg("image received")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"Filename": fileHeader.Filename,
		"Format":   fileHeader.Header.Get("Content-Type"),
		"Size(kb)": sizeKB,
	})
}
