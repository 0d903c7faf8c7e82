package handler

import (
	"context"
	"net/http"
	"time"

	"newshub/internal/httpapi/dto"
	"newshub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	svc service.TopicService
}

func NewTopicHandler(svc service.TopicService) *TopicHandler {
	return &TopicHandler{svc: svc}
}

func (h *TopicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/topics", h.List)
}

// List responds with all topics
// GET /api/topics
func (h *TopicHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.TopicResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, dto.TopicFromModel(t))
	}
	c.JSON(http.StatusOK, gin.H{"topics": resp})
}
