package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feedback_app/internal/models"
)

type UserRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewUserRepository(db *sql.DB, d Dialect) *UserRepository {
	return &UserRepository{db: db, dialect: d}
}

// Ensure implementation of UserRepo interface at compile time.
var _ UserRepo = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password, email, first_name, last_name) VALUES (?, ?, ?, ?, ?)`
	selectUserByUsernameSQL = `SELECT username, password, email, first_name, last_name FROM users WHERE username = ?`
	deleteFeedbackOfUserSQL = `DELETE FROM feedback WHERE username = ?`
	deleteUserSQL           = `DELETE FROM users WHERE username = ?`
)

// Create inserts a new user. A taken username or email yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(insertUserSQL),
		u.Username, u.Password, u.Email, u.FirstName, u.LastName)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user %q: %w", u.Username, ErrDuplicate)
		}
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// GetByUsername fetches a user by exact username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectUserByUsernameSQL), username).
		Scan(&u.Username, &u.Password, &u.Email, &u.FirstName, &u.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// Delete removes the user and all of their feedback in one transaction.
func (r *UserRepository) Delete(ctx context.Context, username string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete user %q: %w", username, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, r.dialect.Rebind(deleteFeedbackOfUserSQL), username); err != nil {
		return fmt.Errorf("delete feedback of %q: %w", username, err)
	}
	res, err := tx.ExecContext(ctx, r.dialect.Rebind(deleteUserSQL), username)
	if err != nil {
		return fmt.Errorf("delete user %q: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for user %q: %w", username, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete user %q: %w", username, err)
	}
	return nil
}
