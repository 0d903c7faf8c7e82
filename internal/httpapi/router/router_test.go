package router_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"newshub/internal/config"
	"newshub/internal/httpapi/router"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		GoEnv:          "test",
		HTTPPort:       9090,
		CORSOrigins:    []string{"http://localhost:3000"},
		RateLimitBurst: 20,
	}
}

// The manifest and the 404 fallback never touch the store, so a nil handle
// is enough to exercise the route table.
func TestRouterServesEndpointManifest(t *testing.T) {
	r, err := router.New(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/api", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotEmpty(t, response["endpoints"])
}

func TestRouterUnmatchedPath(t *testing.T) {
	r, err := router.New(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/api/not-a-route", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]any
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Path not found", response["msg"])
}

func TestRouterSetsRequestID(t *testing.T) {
	r, err := router.New(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/api", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
