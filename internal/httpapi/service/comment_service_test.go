package service

import (
	"context"
	"testing"
	"time"

	"newshub/internal/httpapi/apperr"
	"newshub/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Insert(ctx context.Context, articleID int64, author, body *string) (*models.Comment, error) {
	args := m.Called(ctx, articleID, author, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func TestCommentService_ListByArticle(t *testing.T) {
	t.Run("ChecksArticleExistenceBeforeQuerying", func(t *testing.T) {
		repo := new(MockCommentRepository)
		exists := new(MockExistenceChecker)
		svc := NewCommentService(repo, exists)

		exists.On("CheckExists", mock.Anything, "articles", "article_id", int64(999)).
			Return(apperr.NotFound("Resource not found")).Once()

		_, err := svc.ListByArticle(context.Background(), 999)

		appErr := apperr.Translate(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "Resource not found", appErr.Msg)
		repo.AssertNotCalled(t, "ListByArticle", mock.Anything, mock.Anything)
	})

	t.Run("ExistingArticleWithNoCommentsIsEmptyList", func(t *testing.T) {
		repo := new(MockCommentRepository)
		exists := new(MockExistenceChecker)
		svc := NewCommentService(repo, exists)

		exists.On("CheckExists", mock.Anything, "articles", "article_id", int64(2)).Return(nil).Once()
		repo.On("ListByArticle", mock.Anything, int64(2)).Return([]models.Comment{}, nil).Once()

		comments, err := svc.ListByArticle(context.Background(), 2)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("ReturnsComments", func(t *testing.T) {
		repo := new(MockCommentRepository)
		exists := new(MockExistenceChecker)
		svc := NewCommentService(repo, exists)

		expected := []models.Comment{
			{CommentID: 2, ArticleID: 1, Body: "newer", Author: "lurker", CreatedAt: time.Now()},
			{CommentID: 1, ArticleID: 1, Body: "older", Author: "butter_bridge"},
		}
		exists.On("CheckExists", mock.Anything, "articles", "article_id", int64(1)).Return(nil).Once()
		repo.On("ListByArticle", mock.Anything, int64(1)).Return(expected, nil).Once()

		comments, err := svc.ListByArticle(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, comments, 2)
		assert.Equal(t, "newer", comments[0].Body)
	})
}

func TestCommentService_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockCommentRepository)
		svc := NewCommentService(repo, new(MockExistenceChecker))

		repo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		assert.NoError(t, svc.Delete(context.Background(), 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockCommentRepository)
		svc := NewCommentService(repo, new(MockExistenceChecker))

		repo.On("Delete", mock.Anything, int64(999)).Return(gorm.ErrRecordNotFound).Once()

		err := svc.Delete(context.Background(), 999)

		appErr := apperr.Translate(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "Comment not found", appErr.Msg)
	})
}
