package dto

import (
	"time"

	"newshub/internal/httpapi/models"
)

// UpdateArticleVotesDTO is the PATCH body. IncVotes is a pointer so a
// missing field and a zero delta stay distinguishable.
type UpdateArticleVotesDTO struct {
	IncVotes *int `json:"inc_votes"`
}

// ArticleListResponse is the list form of an article: no body, always a
// comment count.
type ArticleListResponse struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL *string   `json:"article_img_url,omitempty"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleResponse is the full form, body included. CommentCount is a
// pointer: the by-id fetch populates it (zero included), while the vote
// update returns the bare row and omits it.
type ArticleResponse struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL *string   `json:"article_img_url,omitempty"`
	CommentCount  *int      `json:"comment_count,omitempty"`
}

// FromModelToArticleListResponse converts an Article model to its list form
func FromModelToArticleListResponse(a *models.Article) ArticleListResponse {
	return ArticleListResponse{
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

// FromModelToArticleResponse converts an Article model to its full form.
// withCount controls whether the aggregate is part of the payload.
func FromModelToArticleResponse(a *models.Article, withCount bool) ArticleResponse {
	resp := ArticleResponse{
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
	}
	if withCount {
		count := a.CommentCount
		resp.CommentCount = &count
	}
	return resp
}
