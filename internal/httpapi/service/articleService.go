package service

import (
	"context"
	"errors"

	"newshub/internal/httpapi/apperr"
	"newshub/internal/httpapi/models"
	"newshub/internal/httpapi/repository"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	defaultSortBy = "created_at"
	defaultOrder  = "desc"
)

type ArticleService interface {
	List(ctx context.Context, sortBy, order, topic string) ([]models.Article, error)
	GetByID(ctx context.Context, articleID int64) (*models.Article, error)
	UpdateVotes(ctx context.Context, articleID int64, delta int) (*models.Article, error)
}

type articleService struct {
	articles repository.ArticleRepository
	exists   repository.ExistenceChecker
}

func NewArticleService(articles repository.ArticleRepository, exists repository.ExistenceChecker) ArticleService {
	return &articleService{
		articles: articles,
		exists:   exists,
	}
}

// List validates the sort parameters against the column allow-list before
// anything touches the store, then runs the listing. When a topic filter is
// present the topic's own existence is checked concurrently with the query:
// an empty result alone can't tell a topic with no articles (200, empty
// list) apart from a topic that doesn't exist (404).
func (s *articleService) List(ctx context.Context, sortBy, order, topic string) ([]models.Article, error) {
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	if order == "" {
		order = defaultOrder
	}

	if !repository.ValidSortColumn(sortBy) {
		return nil, apperr.BadRequest("Invalid sort_by column")
	}
	if !repository.ValidOrder(order) {
		return nil, apperr.BadRequest("Invalid order")
	}

	if topic == "" {
		return s.articles.List(ctx, sortBy, order, "")
	}

	g, gctx := errgroup.WithContext(ctx)

	var list []models.Article
	g.Go(func() error {
		var err error
		list, err = s.articles.List(gctx, sortBy, order, topic)
		return err
	})
	g.Go(func() error {
		return s.exists.CheckExists(gctx, "topics", "slug", topic)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID fetches one article with its comment count.
func (s *articleService) GetByID(ctx context.Context, articleID int64) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Article not found")
		}
		return nil, err
	}
	return article, nil
}

// UpdateVotes applies the vote delta atomically and returns the updated row.
func (s *articleService) UpdateVotes(ctx context.Context, articleID int64, delta int) (*models.Article, error) {
	article, err := s.articles.IncrementVotes(ctx, articleID, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Article not found")
		}
		return nil, err
	}
	return article, nil
}
