package service

import (
	"context"
	"errors"

	"newshub/internal/httpapi/apperr"
	"newshub/internal/httpapi/models"
	"newshub/internal/httpapi/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, articleID int64, username, body *string) (*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type commentService struct {
	comments repository.CommentRepository
	exists   repository.ExistenceChecker
}

func NewCommentService(comments repository.CommentRepository, exists repository.ExistenceChecker) CommentService {
	return &commentService{
		comments: comments,
		exists:   exists,
	}
}

// ListByArticle returns all comments for an article, newest first. The
// article's existence is checked before querying: an article with no
// comments answers with an empty list, an unknown article with a 404, and
// the comment query alone can't distinguish the two.
func (s *commentService) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	if err := s.exists.CheckExists(ctx, "articles", "article_id", articleID); err != nil {
		return nil, err
	}
	return s.comments.ListByArticle(ctx, articleID)
}

// Create attaches a comment to an article. Missing fields and unknown
// referenced entities are not pre-validated here; the insert's constraint
// violations carry that information and the central translator maps them.
func (s *commentService) Create(ctx context.Context, articleID int64, username, body *string) (*models.Comment, error) {
	return s.comments.Insert(ctx, articleID, username, body)
}

// Delete removes a comment by id.
func (s *commentService) Delete(ctx context.Context, commentID int64) error {
	if err := s.comments.Delete(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Comment not found")
		}
		return err
	}
	return nil
}
