package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/ailoapp/ailo-backend/internal/entity"
)

const uniqueViolation = "23505"

type WaitlistRepository struct {
	DB *sql.DB
}

func NewWaitlistRepository(db *sql.DB) *WaitlistRepository {
	return &WaitlistRepository{DB: db}
}

func (r *WaitlistRepository) Create(ctx context.Context, sub *entity.WaitlistSubscriber) error {
	query := `
		INSERT INTO waitlist_subscribers (email, city)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(ctx, query, sub.Email, nullString(sub.City)).
		Scan(&sub.ID, &sub.CreatedAt)
	return translateDuplicate(err)
}

type NewsletterRepository struct {
	DB *sql.DB
}

func NewNewsletterRepository(db *sql.DB) *NewsletterRepository {
	return &NewsletterRepository{DB: db}
}

func (r *NewsletterRepository) Create(ctx context.Context, sub *entity.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (email, source)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(ctx, query, sub.Email, sub.Source).
		Scan(&sub.ID, &sub.CreatedAt)
	return translateDuplicate(err)
}

// translateDuplicate maps the Postgres unique-constraint violation to the
// sentinel handlers answer 409 with. Anything else stays a 500-grade error.
func translateDuplicate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return entity.ErrDuplicateEmail
	}
	return err
}
