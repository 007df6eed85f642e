package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipstream/internal/config"
	"clipstream/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp builds a server against an in-memory SQLite database with the
// full route table mounted. Redis is nil; rate limiting is disabled outside
// production environments.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		Port:      "0",
		Env:       "test",
	}

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

// signupUser registers a user through the API and returns the bearer token
// and user id.
func signupUser(t *testing.T, app *fiber.App, username string) (string, uint) {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":"password123"}`,
		username, username+"@example.com")
	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", body, "")
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token, out.User.ID
}

// doJSON executes a request against the app with an optional JSON body and
// bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes a JSON response body into out and closes the body.
func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// createVideo uploads a published video and returns its id.
func createVideo(t *testing.T, app *fiber.App, token, title string) uint {
	t.Helper()

	body := fmt.Sprintf(`{"title":%q,"description":"d","video_url":"https://cdn.example.com/v.mp4","thumbnail_url":"https://cdn.example.com/t.jpg","duration":120}`, title)
	resp := doJSON(t, app, http.MethodPost, "/api/videos", body, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var video struct {
		ID uint `json:"id"`
	}
	decodeBody(t, resp, &video)
	require.NotZero(t, video.ID)
	return video.ID
}
