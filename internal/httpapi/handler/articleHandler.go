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

type ArticleHandler struct {
	articleService service.ArticleService
}

func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// RegisterRoutes registers article-related routes
func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	articles := rg.Group("/articles")
	{
		articles.GET("", h.List)
		articles.GET("/:article_id", h.GetByID)
		articles.PATCH("/:article_id", h.UpdateVotes)
	}
}

// List responds with all articles and their comment counts
// GET /api/articles?topic=&sort_by=&order=
func (h *ArticleHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	articles, err := h.articleService.List(ctx, c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.ArticleListResponse, 0, len(articles))
	for i := range articles {
		resp = append(resp, dto.FromModelToArticleListResponse(&articles[i]))
	}
	c.JSON(http.StatusOK, gin.H{"articles": resp})
}

// GetByID responds with a single article, body and comment count included
// GET /api/articles/:article_id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	article, err := h.articleService.GetByID(ctx, articleID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": dto.FromModelToArticleResponse(article, true)})
}

// UpdateVotes applies a vote delta to an article and responds with the
// updated row
// PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	var req dto.UpdateArticleVotesDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}
	if req.IncVotes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing required field"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	article, err := h.articleService.UpdateVotes(ctx, articleID, *req.IncVotes)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": dto.FromModelToArticleResponse(article, false)})
}
