package service

import (
	"context"

	"feedback_app/internal/models"
	"feedback_app/internal/repository"
)

// Authorization covers account creation and credential checks.
type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// Users exposes profile reads and account deletion.
type Users interface {
	GetUser(ctx context.Context, username string) (models.User, error)
	DeleteUser(ctx context.Context, username string) error
}

// Feedback manages a user's feedback notes. Ownership checks are the caller's job.
type Feedback interface {
	ListFeedback(ctx context.Context, username string) ([]models.Feedback, error)
	GetFeedback(ctx context.Context, id int) (models.Feedback, error)
	AddFeedback(ctx context.Context, username string, in FeedbackInput) (models.Feedback, error)
	UpdateFeedback(ctx context.Context, id int, in FeedbackInput) (models.Feedback, error)
	DeleteFeedback(ctx context.Context, id int) error
}

type Service struct {
	Authorization
	Users
	Feedback
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, hasher Hasher) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, hasher),
		Users:         NewUserService(repos.Users),
		Feedback:      NewFeedbackService(repos.Users, repos.Feedback),
	}
}
