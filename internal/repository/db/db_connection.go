package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"feedback_app/internal/repository"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	pingTimeout = 5 * time.Second

	pgMaxOpenConns    = 25
	pgMaxIdleConns    = 5
	pgConnMaxIdleTime = 2 * time.Minute
	pgConnMaxLifetime = 30 * time.Minute
)

// Open connects to the configured backend, applies connection settings and
// ensures the schema exists. source is a file path for sqlite and a URL/DSN
// for postgres.
func Open(ctx context.Context, d repository.Dialect, source string) (*sql.DB, error) {
	db, err := sql.Open(d.DriverName(), source)
	if err != nil {
		return nil, fmt.Errorf("open %s at %q: %w", d, source, err)
	}

	switch d {
	case repository.DialectSQLite:
		err = configureSQLite(db)
	case repository.DialectPostgres:
		configurePostgres(db)
	}
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d, err)
	}

	if err := ensureSchema(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func configureSQLite(db *sql.DB) error {
	// A single connection keeps the per-connection pragmas below in effect
	// and avoids writer contention.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("set %s: %w", pragma, err)
		}
	}
	return nil
}

func configurePostgres(db *sql.DB) {
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	db.SetConnMaxIdleTime(pgConnMaxIdleTime)
	db.SetConnMaxLifetime(pgConnMaxLifetime)
}
