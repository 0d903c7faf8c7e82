package handler

import (
	"context"
	"net/http"
	"time"

	"newshub/internal/httpapi/dto"
	"newshub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:username", h.GetByUsername)
	}
}

// List responds with all users
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.userService.GetAll(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.UserFromModel(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": resp})
}

// GetByUsername responds with a single user
// GET /api/users/:username
func (h *UserHandler) GetByUsername(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userService.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.UserFromModel(*user)})
}
