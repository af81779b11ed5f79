package service

import (
	"context"
	"errors"

	"feedback_app/internal/models"
	"feedback_app/internal/repository"
)

type FeedbackService struct {
	users    repository.UserRepo
	feedback repository.FeedbackRepo
}

func NewFeedbackService(users repository.UserRepo, feedback repository.FeedbackRepo) *FeedbackService {
	return &FeedbackService{users: users, feedback: feedback}
}

func (s *FeedbackService) ListFeedback(ctx context.Context, username string) ([]models.Feedback, error) {
	return s.feedback.ListByUsername(ctx, username)
}

func (s *FeedbackService) GetFeedback(ctx context.Context, id int) (models.Feedback, error) {
	f, err := s.feedback.GetByID(ctx, id)
	if err != nil {
		return models.Feedback{}, err
	}
	if f == nil {
		return models.Feedback{}, ErrFeedbackNotFound
	}
	return *f, nil
}

// AddFeedback creates a note owned by username, which must exist.
func (s *FeedbackService) AddFeedback(ctx context.Context, username string, in FeedbackInput) (models.Feedback, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.Feedback{}, err
	}
	if u == nil {
		return models.Feedback{}, ErrUserNotFound
	}

	f := models.Feedback{Title: in.Title, Content: in.Content, Username: u.Username}
	id, err := s.feedback.Create(ctx, f)
	if err != nil {
		return models.Feedback{}, err
	}
	f.ID = id
	return f, nil
}

// UpdateFeedback rewrites title and content; id and owner never change.
func (s *FeedbackService) UpdateFeedback(ctx context.Context, id int, in FeedbackInput) (models.Feedback, error) {
	if err := s.feedback.Update(ctx, id, in.Title, in.Content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Feedback{}, ErrFeedbackNotFound
		}
		return models.Feedback{}, err
	}
	return s.GetFeedback(ctx, id)
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, id int) error {
	err := s.feedback.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFeedbackNotFound
	}
	return err
}
