package service

import (
	"context"
	"errors"

	"feedback_app/internal/models"
	"feedback_app/internal/repository"
)

type UserService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUser(ctx context.Context, username string) (models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	return *u, nil
}

// DeleteUser removes the account and, with it, every feedback it owns.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	err := s.users.Delete(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
