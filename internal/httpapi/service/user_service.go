package service

import (
	"context"
	"errors"

	"newshub/internal/httpapi/apperr"
	"newshub/internal/httpapi/models"
	"newshub/internal/httpapi/repository"

	"gorm.io/gorm"
)

type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
