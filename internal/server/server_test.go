package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivenessCheck(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health/live", "", "")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReadinessCheckWithoutRedis(t *testing.T) {
	app, _ := newTestApp(t)

	// A healthy database is enough for readiness; Redis is optional.
	resp := doJSON(t, app, http.MethodGet, "/health/ready", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
			Redis    string `json:"redis"`
		} `json:"checks"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, "healthy", out.Status)
	assert.Equal(t, "healthy", out.Checks.Database)
	assert.Equal(t, "unavailable", out.Checks.Redis)
}

func TestLegacyHealthRoute(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health", "", "")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
