package router_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/router"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full application stack (config, server container,
// middleware chain, handlers) exactly the way main does, minus the listener.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "development"},
		Server: config.ServerConfig{
			Port:               "8000",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
	}

	log := zerolog.Nop()
	srv := server.New(cfg, &log)

	return router.New(handler.NewHandlers(srv), middleware.NewMiddlewares(srv))
}

// perform sends req through the router and returns the recorder.
func perform(t *testing.T, r *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// decodeJSON unmarshals the response body into a generic map.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// fieldNames extracts the field names from a 422 response's errors list.
func fieldNames(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()

	body := decodeJSON(t, rec)
	raw, ok := body["errors"].([]interface{})
	require.True(t, ok, "expected errors list in response: %s", rec.Body.String())

	var names []string
	for _, item := range raw {
		entry := item.(map[string]interface{})
		names = append(names, entry["field"].(string))
	}
	return names
}

func validPersonJSON() string {
	return `{
		"first_name": "Miguel",
		"last_name": "Torres",
		"age": 25,
		"hair_color": "black",
		"is_married": false,
		"password": "supersecret"
	}`
}

func TestHome(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := perform(t, r, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":"OK"}`, rec.Body.String())
}

func TestCreatePerson(t *testing.T) {
	r := newTestRouter(t)

	t.Run("valid payload returns person without password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/person/new", strings.NewReader(validPersonJSON()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeJSON(t, rec)
		assert.Equal(t, "Miguel", body["first_name"])
		assert.Equal(t, "Torres", body["last_name"])
		assert.Equal(t, float64(25), body["age"])
		assert.Equal(t, "black", body["hair_color"])
		assert.Equal(t, false, body["is_married"])
		assert.NotContains(t, body, "password")
	})

	t.Run("age of zero fails validation", func(t *testing.T) {
		payload := `{"first_name":"Miguel","last_name":"Torres","age":0,"password":"supersecret"}`
		req := httptest.NewRequest(http.MethodPost, "/person/new", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "age")
	})

	t.Run("age above 1000 fails validation", func(t *testing.T) {
		payload := `{"first_name":"Miguel","last_name":"Torres","age":1001,"password":"supersecret"}`
		req := httptest.NewRequest(http.MethodPost, "/person/new", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "age")
	})

	t.Run("short password fails validation", func(t *testing.T) {
		payload := `{"first_name":"Miguel","last_name":"Torres","age":25,"password":"short"}`
		req := httptest.NewRequest(http.MethodPost, "/person/new", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "password")
	})

	t.Run("unknown hair color fails validation", func(t *testing.T) {
		payload := `{"first_name":"Miguel","last_name":"Torres","age":25,"hair_color":"green","password":"supersecret"}`
		req := httptest.NewRequest(http.MethodPost, "/person/new", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "hair_color")
	})
}

func TestShowPersonDetail(t *testing.T) {
	r := newTestRouter(t)

	t.Run("returns name to age mapping", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/person/detail?name=Miguel&age=25", nil)
		rec := perform(t, r, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"Miguel":"25"}`, rec.Body.String())
	})

	t.Run("missing age fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/person/detail?name=Miguel", nil)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "age")
	})

	t.Run("name longer than 50 chars fails validation", func(t *testing.T) {
		longName := strings.Repeat("a", 51)
		req := httptest.NewRequest(http.MethodGet, "/person/detail?name="+longName+"&age=25", nil)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "name")
	})
}

func TestShowPersonDetailByID(t *testing.T) {
	r := newTestRouter(t)

	t.Run("known ids confirm existence", func(t *testing.T) {
		for _, id := range []string{"1", "2", "3", "4", "5", "6"} {
			req := httptest.NewRequest(http.MethodGet, "/person/detail/"+id, nil)
			rec := perform(t, r, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"`+id+`":"It exists!"}`, rec.Body.String())
		}
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/person/detail/9", nil)
		rec := perform(t, r, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		body := decodeJSON(t, rec)
		assert.Equal(t, "NOT_FOUND", body["code"])
	})

	t.Run("zero id fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/person/detail/0", nil)
		rec := perform(t, r, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("non-numeric id fails binding", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/person/detail/abc", nil)
		rec := perform(t, r, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestUpdatePerson(t *testing.T) {
	r := newTestRouter(t)

	t.Run("merges person and location fields", func(t *testing.T) {
		payload := `{
			"person": ` + validPersonJSON() + `,
			"location": {"city": "Bogota", "state": "Cundinamarca", "country": "Colombia"}
		}`
		req := httptest.NewRequest(http.MethodPut, "/person/3", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeJSON(t, rec)
		assert.Equal(t, "Miguel", body["first_name"])
		assert.Equal(t, "Torres", body["last_name"])
		assert.Equal(t, float64(25), body["age"])
		assert.Equal(t, "black", body["hair_color"])
		assert.Equal(t, false, body["is_married"])
		assert.Equal(t, "Bogota", body["city"])
		assert.Equal(t, "Cundinamarca", body["state"])
		assert.Equal(t, "Colombia", body["country"])
		assert.NotContains(t, body, "password")

		// Person and location keys are disjoint by construction:
		// the merged map holds all eight of them.
		assert.Len(t, body, 8)
	})

	t.Run("missing location fields fail validation", func(t *testing.T) {
		payload := `{
			"person": ` + validPersonJSON() + `,
			"location": {"city": "Bogota"}
		}`
		req := httptest.NewRequest(http.MethodPut, "/person/3", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		names := fieldNames(t, rec)
		assert.Contains(t, names, "state")
		assert.Contains(t, names, "country")
	})

	t.Run("zero person id fails validation", func(t *testing.T) {
		payload := `{
			"person": ` + validPersonJSON() + `,
			"location": {"city": "Bogota", "state": "Cundinamarca", "country": "Colombia"}
		}`
		req := httptest.NewRequest(http.MethodPut, "/person/0", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := perform(t, r, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t)

	t.Run("echoes username with fixed message", func(t *testing.T) {
		form := url.Values{}
		form.Set("username", "miguel")
		form.Set("password", "whatever")

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"username":"miguel","message":"Login successfully!"}`, rec.Body.String())
	})

	t.Run("missing password fails validation", func(t *testing.T) {
		form := url.Values{}
		form.Set("username", "miguel")

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "password")
	})

	t.Run("username over 20 chars fails validation", func(t *testing.T) {
		form := url.Values{}
		form.Set("username", strings.Repeat("m", 21))
		form.Set("password", "whatever")

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "username")
	})
}

func TestContact(t *testing.T) {
	r := newTestRouter(t)

	validForm := func() url.Values {
		form := url.Values{}
		form.Set("first_name", "Miguel")
		form.Set("last_name", "Torres")
		form.Set("email", "miguel@example.com")
		form.Set("message", "This message is definitely long enough.")
		return form
	}

	t.Run("returns the raw user agent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(validForm().Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.Header.Set("User-Agent", "test-agent/1.0")
		req.AddCookie(&http.Cookie{Name: "ads", Value: "tracking-id"})
		rec := perform(t, r, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var userAgent string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &userAgent))
		assert.Equal(t, "test-agent/1.0", userAgent)
	})

	t.Run("works without user agent and cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(validForm().Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := perform(t, r, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		form := validForm()
		form.Set("email", "not-an-email")

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "email")
	})

	t.Run("short message fails validation", func(t *testing.T) {
		form := validForm()
		form.Set("message", "too short")

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "message")
	})
}

func TestPostImage(t *testing.T) {
	r := newTestRouter(t)

	t.Run("reports filename format and size", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)

		part, err := writer.CreateFormFile("image", "photo.png")
		require.NoError(t, err)

		// 2048 bytes -> exactly 2.00 KB.
		_, err = part.Write(bytes.Repeat([]byte("x"), 2048))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/post-image", &buf)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := perform(t, r, req)

		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeJSON(t, rec)
		assert.Equal(t, "photo.png", body["Filename"])
		assert.Equal(t, "application/octet-stream", body["Format"])
		assert.Equal(t, float64(2), body["Size(kb)"])
	})

	t.Run("size is rounded to two decimals", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)

		part, err := writer.CreateFormFile("image", "tiny.bin")
		require.NoError(t, err)

		// 777 bytes -> 0.7587... KB -> 0.76 after rounding.
		_, err = part.Write(bytes.Repeat([]byte("y"), 777))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/post-image", &buf)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := perform(t, r, req)

		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeJSON(t, rec)
		assert.Equal(t, 0.76, body["Size(kb)"])
	})

	t.Run("missing file fails validation", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/post-image", &buf)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := perform(t, r, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, fieldNames(t, rec), "image")
	})
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("status reports healthy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeJSON(t, rec)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "development", body["environment"])
	})

	t.Run("unknown route returns 404 shape", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rec := perform(t, r, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		body := decodeJSON(t, rec)
		assert.Equal(t, "NOT_FOUND", body["code"])
		assert.Equal(t, "Route not found", body["message"])
	})

	t.Run("responses carry a request id header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := perform(t, r, req)

		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("incoming request id is echoed back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "fixed-id")
		rec := perform(t, r, req)

		assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
	})
}
