package dto

import (
	"time"

	"newshub/internal/httpapi/models"
)

// CreateCommentDTO for posting a comment. Fields are deliberately unbound:
// a missing username or body inserts NULL and the store's not-null
// constraint reports it, which keeps validation in one place.
type CreateCommentDTO struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	CommentID int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		ArticleID: c.ArticleID,
		Body:      c.Body,
		Votes:     c.Votes,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
	}
}
