package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Postgres driver
)

// NewDBConnection opens the pool and proves it with a ping.
func NewDBConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the three lead-capture tables if they are missing.
// quiz_submissions has no unique email: retakes are legitimate, booking
// dedup lives in the CRM call_status check instead.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quiz_submissions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			location TEXT,
			intent TEXT,
			availability TEXT,
			investment TEXT,
			timeline TEXT,
			outcome TEXT NOT NULL,
			lead_source TEXT DEFAULT 'website',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_submissions_email
			ON quiz_submissions(email)`,
		`CREATE TABLE IF NOT EXISTS waitlist_subscribers (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			city TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			source TEXT DEFAULT 'not-ready',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
