package handler

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

type EndpointsHandler struct {
	manifest map[string]json.RawMessage
}

func NewEndpointsHandler() (*EndpointsHandler, error) {
	var manifest map[string]json.RawMessage
	if err := json.Unmarshal(endpointsJSON, &manifest); err != nil {
		return nil, err
	}
	return &EndpointsHandler{manifest: manifest}, nil
}

func (h *EndpointsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
}

// Get responds with the manifest describing every endpoint this API serves
// GET /api
func (h *EndpointsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": h.manifest})
}
