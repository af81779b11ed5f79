package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feedback_app/internal/models"
)

type FeedbackRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewFeedbackRepository(db *sql.DB, d Dialect) *FeedbackRepository {
	return &FeedbackRepository{db: db, dialect: d}
}

var _ FeedbackRepo = (*FeedbackRepository)(nil)

const (
	insertFeedbackSQL           = `INSERT INTO feedback (title, content, username) VALUES (?, ?, ?) RETURNING id`
	selectFeedbackByIDSQL       = `SELECT id, title, content, username FROM feedback WHERE id = ?`
	selectFeedbackByUsernameSQL = `SELECT id, title, content, username FROM feedback WHERE username = ? ORDER BY id ASC`
	updateFeedbackSQL           = `UPDATE feedback SET title = ?, content = ? WHERE id = ?`
	deleteFeedbackSQL           = `DELETE FROM feedback WHERE id = ?`
)

// Create inserts f and returns the generated id. f.ID is ignored.
func (r *FeedbackRepository) Create(ctx context.Context, f models.Feedback) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(insertFeedbackSQL), f.Title, f.Content, f.Username).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert feedback for %q: %w", f.Username, err)
	}
	return id, nil
}

// GetByID returns (nil, nil) if no feedback has that id.
func (r *FeedbackRepository) GetByID(ctx context.Context, id int) (*models.Feedback, error) {
	var f models.Feedback
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectFeedbackByIDSQL), id).
		Scan(&f.ID, &f.Title, &f.Content, &f.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select feedback %d: %w", id, err)
	}
	return &f, nil
}

// ListByUsername returns the user's feedback ordered by id.
func (r *FeedbackRepository) ListByUsername(ctx context.Context, username string) ([]models.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(selectFeedbackByUsernameSQL), username)
	if err != nil {
		return nil, fmt.Errorf("list feedback of %q: %w", username, err)
	}
	defer rows.Close()

	out := make([]models.Feedback, 0, 8)
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.Title, &f.Content, &f.Username); err != nil {
			return nil, fmt.Errorf("scan feedback of %q: %w", username, err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback of %q: %w", username, err)
	}
	return out, nil
}

// Update changes title and content only.
func (r *FeedbackRepository) Update(ctx context.Context, id int, title, content string) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(updateFeedbackSQL), title, content, id)
	if err != nil {
		return fmt.Errorf("update feedback %d: %w", id, err)
	}
	return expectAffected(res, id)
}

func (r *FeedbackRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(deleteFeedbackSQL), id)
	if err != nil {
		return fmt.Errorf("delete feedback %d: %w", id, err)
	}
	return expectAffected(res, id)
}

func expectAffected(res sql.Result, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for feedback %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
