package service

import (
	"context"
	"errors"
	"fmt"

	"feedback_app/internal/models"
	"feedback_app/internal/repository"
)

// AuthService handles registration and credential checks.
type AuthService struct {
	users  repository.UserRepo
	hasher Hasher
}

func NewAuthService(users repository.UserRepo, hasher Hasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Register hashes the password and persists a new user. A taken username or
// email is reported as ErrUserTaken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid password: %w", err)
	}

	u := models.NewUser(in.Username, hash, in.Email, in.FirstName, in.LastName)
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, ErrUserTaken
		}
		return models.User{}, err
	}
	return u, nil
}

// Authenticate returns the user when the password matches. Unknown username
// and wrong password both yield (nil, nil).
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || !s.hasher.Verify(u.Password, password) {
		return nil, nil
	}
	return u, nil
}
