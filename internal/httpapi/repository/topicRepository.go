package repository

import (
	"context"

	"newshub/internal/httpapi/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	if err := r.db.WithContext(ctx).Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}
