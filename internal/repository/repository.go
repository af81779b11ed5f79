package repository

import (
	"context"
	"database/sql"
	"errors"

	"feedback_app/internal/models"
)

var (
	// ErrNotFound is returned by mutations that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a unique or primary key constraint.
	ErrDuplicate = errors.New("duplicate key")
)

type UserRepo interface {
	Create(ctx context.Context, u models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Delete(ctx context.Context, username string) error
}

type FeedbackRepo interface {
	Create(ctx context.Context, f models.Feedback) (int, error)
	GetByID(ctx context.Context, id int) (*models.Feedback, error)
	ListByUsername(ctx context.Context, username string) ([]models.Feedback, error)
	Update(ctx context.Context, id int, title, content string) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Users    UserRepo
	Feedback FeedbackRepo
}

func NewRepository(db *sql.DB, d Dialect) *Repository {
	return &Repository{
		Users:    NewUserRepository(db, d),
		Feedback: NewFeedbackRepository(db, d),
	}
}
