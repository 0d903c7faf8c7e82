package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"newshub/internal/httpapi/dto"
	"newshub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment-related routes
func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Article comments
	articleComments := rg.Group("/articles/:article_id/comments")
	{
		articleComments.GET("", h.ListByArticle)
		articleComments.POST("", h.Create)
	}

	// Comment operations
	comments := rg.Group("/comments")
	{
		comments.DELETE("/:comment_id", h.Delete)
	}
}

// ListByArticle responds with all comments for an article, newest first
// GET /api/articles/:article_id/comments
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comments, err := h.commentService.ListByArticle(ctx, articleID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, dto.FromModelToCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, gin.H{"comments": resp})
}

// Create adds a comment to an article
// POST /api/articles/:article_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comment, err := h.commentService.Create(ctx, articleID, req.Username, req.Body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": dto.FromModelToCommentResponse(comment)})
}

// Delete removes a comment
// DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.commentService.Delete(ctx, commentID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
