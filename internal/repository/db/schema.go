package db

import (
	"context"
	"database/sql"
	"fmt"

	"feedback_app/internal/repository"
)

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    username VARCHAR(20) PRIMARY KEY,
    password TEXT NOT NULL,
    email VARCHAR(50) NOT NULL UNIQUE,
    first_name VARCHAR(30) NOT NULL,
    last_name VARCHAR(30) NOT NULL
);
`

const schemaFeedbackSQLite = `
CREATE TABLE IF NOT EXISTS feedback (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title VARCHAR(100) NOT NULL,
    content TEXT NOT NULL,
    username VARCHAR(20) NOT NULL REFERENCES users(username) ON DELETE CASCADE
);
`

const schemaFeedbackPostgres = `
CREATE TABLE IF NOT EXISTS feedback (
    id SERIAL PRIMARY KEY,
    title VARCHAR(100) NOT NULL,
    content TEXT NOT NULL,
    username VARCHAR(20) NOT NULL REFERENCES users(username) ON DELETE CASCADE
);
`

const schemaFeedbackIndex = `CREATE INDEX IF NOT EXISTS feedback_username_idx ON feedback (username);`

func schemaFor(d repository.Dialect) []string {
	feedback := schemaFeedbackSQLite
	if d == repository.DialectPostgres {
		feedback = schemaFeedbackPostgres
	}
	return []string{schemaUsers, feedback, schemaFeedbackIndex}
}

func ensureSchema(ctx context.Context, db *sql.DB, d repository.Dialect) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback()
	}()

	for i, stmt := range schemaFor(d) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
