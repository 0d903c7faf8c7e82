package repository

import (
	"context"
	"fmt"

	"newshub/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// validSortColumns is the allow-list for the dynamic ORDER BY of List.
// comment_count is the derived aggregate, the rest are article columns.
// Sort identifiers are interpolated into the query, so anything not on
// this list must be rejected before it gets near the SQL.
var validSortColumns = map[string]bool{
	"article_id":    true,
	"title":         true,
	"topic":         true,
	"author":        true,
	"body":          true,
	"created_at":    true,
	"votes":         true,
	"comment_count": true,
}

var validOrders = map[string]bool{
	"asc":  true,
	"desc": true,
}

// ValidSortColumn reports whether column may be used as a sort key.
func ValidSortColumn(column string) bool {
	return validSortColumns[column]
}

// ValidOrder reports whether order is a recognised sort direction.
func ValidOrder(order string) bool {
	return validOrders[order]
}

// listColumns deliberately leaves out articles.body: the list form never
// exposes it.
const listColumns = "articles.article_id, articles.title, articles.topic, articles.author, " +
	"articles.created_at, articles.votes, articles.article_img_url, " +
	"COUNT(comments.comment_id) AS comment_count"

type ArticleRepository interface {
	List(ctx context.Context, sortBy, order, topic string) ([]models.Article, error)
	GetByID(ctx context.Context, articleID int64) (*models.Article, error)
	IncrementVotes(ctx context.Context, articleID int64, delta int) (*models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// List returns all articles with their comment counts, optionally filtered
// by topic, ordered by the given column and direction. Callers validate
// sortBy/order first; the guard here is a second line of defence.
func (r *articleRepository) List(ctx context.Context, sortBy, order, topic string) ([]models.Article, error) {
	if !ValidSortColumn(sortBy) || !ValidOrder(order) {
		return nil, fmt.Errorf("unvalidated sort parameters %q %q", sortBy, order)
	}

	q := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Select(listColumns).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")

	if topic != "" {
		q = q.Where("articles.topic = ?", topic)
	}

	var list []models.Article
	if err := q.Order(fmt.Sprintf("%s %s", sortBy, order)).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID fetches a single article, body included, with its comment count.
func (r *articleRepository) GetByID(ctx context.Context, articleID int64) (*models.Article, error) {
	var a models.Article
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", articleID).
		Group("articles.article_id").
		Take(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// IncrementVotes applies the vote delta and returns the updated row in one
// statement, so the existence check and the update cannot race.
func (r *articleRepository) IncrementVotes(ctx context.Context, articleID int64, delta int) (*models.Article, error) {
	var a models.Article
	res := r.db.WithContext(ctx).
		Model(&a).
		Clauses(clause.Returning{}).
		Where("article_id = ?", articleID).
		Update("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}
