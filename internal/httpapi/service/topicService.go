package service

import (
	"context"

	"newshub/internal/httpapi/models"
	"newshub/internal/httpapi/repository"
)

type TopicService interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
}

type topicService struct {
	topics repository.TopicRepository
}

func NewTopicService(topics repository.TopicRepository) TopicService {
	return &topicService{topics: topics}
}

func (s *topicService) GetAll(ctx context.Context) ([]models.Topic, error) {
	return s.topics.GetAll(ctx)
}
