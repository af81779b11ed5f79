package service

import (
	"context"

	"feedback_app/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.UserRepo.
type mockUserRepo struct {
	CreateFn        func(u models.User) error
	GetByUsernameFn func(username string) (*models.User, error)
	DeleteFn        func(username string) error

	created  []models.User
	getCalls []string
}

func (m *mockUserRepo) Create(_ context.Context, u models.User) error {
	m.created = append(m.created, u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) Delete(_ context.Context, username string) error {
	return m.DeleteFn(username)
}

// mockFeedbackRepo keeps rows in a map so service tests can observe state.
type mockFeedbackRepo struct {
	rows   map[int]models.Feedback
	nextID int
	err    error
}

func newMockFeedbackRepo() *mockFeedbackRepo {
	return &mockFeedbackRepo{rows: map[int]models.Feedback{}, nextID: 1}
}

func (m *mockFeedbackRepo) Create(_ context.Context, f models.Feedback) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	f.ID = m.nextID
	m.nextID++
	m.rows[f.ID] = f
	return f.ID, nil
}

func (m *mockFeedbackRepo) GetByID(_ context.Context, id int) (*models.Feedback, error) {
	if m.err != nil {
		return nil, m.err
	}
	f, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (m *mockFeedbackRepo) ListByUsername(_ context.Context, username string) ([]models.Feedback, error) {
	var out []models.Feedback
	for id := 1; id < m.nextID; id++ {
		if f, ok := m.rows[id]; ok && f.Username == username {
			out = append(out, f)
		}
	}
	return out, m.err
}

func (m *mockFeedbackRepo) Update(_ context.Context, id int, title, content string) error {
	f, ok := m.rows[id]
	if !ok {
		return errNotFoundForMock
	}
	f.Title, f.Content = title, content
	m.rows[id] = f
	return nil
}

func (m *mockFeedbackRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.rows[id]; !ok {
		return errNotFoundForMock
	}
	delete(m.rows, id)
	return nil
}
