package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newshub/internal/httpapi/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointsHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, err := handler.NewEndpointsHandler()
	require.NoError(t, err)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))

	req, _ := http.NewRequest(http.MethodGet, "/api", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	endpoints := response["endpoints"]
	assert.Contains(t, endpoints, "GET /api")
	assert.Contains(t, endpoints, "GET /api/articles")
	assert.Contains(t, endpoints, "POST /api/articles/:article_id/comments")
	assert.Contains(t, endpoints, "DELETE /api/comments/:comment_id")
}
