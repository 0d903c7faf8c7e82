package repository

import (
	"context"

	"newshub/internal/httpapi/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Insert(ctx context.Context, articleID int64, author, body *string) (*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByArticle retrieves all comments for an article, newest first.
func (r *commentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Insert creates a comment and returns the stored row with its generated id
// and timestamp. Author and body are pointers on purpose: a missing field
// inserts NULL, and the not-null / foreign-key constraints report it, which
// is where the 400/404 for bad input comes from.
func (r *commentRepository) Insert(ctx context.Context, articleID int64, author, body *string) (*models.Comment, error) {
	var c models.Comment
	err := r.db.WithContext(ctx).
		Raw(`INSERT INTO comments (article_id, author, body) VALUES (?, ?, ?) RETURNING *`,
			articleID, author, body).
		Scan(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a comment by id.
func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, commentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
