package database

import (
	"context"
	"database/sql"

	"github.com/ailoapp/ailo-backend/internal/entity"
)

type SubmissionRepository struct {
	DB *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// Create appends one row per submission call. No dedup key: the CRM upsert
// is what converges repeat submissions to one contact.
func (r *SubmissionRepository) Create(ctx context.Context, sub *entity.QuizSubmission) error {
	query := `
		INSERT INTO quiz_submissions
			(id, name, email, phone, location, intent, availability, investment, timeline, outcome, lead_source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		sub.ID,
		sub.Name,
		sub.Email,
		sub.Phone,
		nullString(sub.Location),
		nullString(sub.Intent),
		nullString(sub.Availability),
		nullString(sub.Investment),
		nullString(sub.Timeline),
		string(sub.Outcome),
		sub.LeadSource,
	).Scan(&sub.CreatedAt)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
