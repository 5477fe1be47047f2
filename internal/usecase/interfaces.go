package usecase

import (
	"context"

	"github.com/ailoapp/ailo-backend/internal/entity"
	"github.com/ailoapp/ailo-backend/internal/infra/integration/hubspot"
)

type SubmitQuizInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Answers entity.QuizAnswers `json:"answers"`

	// Outcome the browser computed for itself. Kept for mismatch logging
	// only; the server always rescores.
	ClientOutcome string `json:"outcome,omitempty"`

	RecaptchaToken string `json:"recaptchaToken,omitempty"`
}

type SubmitQuizOutput struct {
	Outcome entity.Outcome `json:"outcome"`
	Score   int            `json:"score"`

	// CRMSynced is the secondary diagnostic channel: the submission is
	// already successful (row persisted) even when this is false.
	CRMSynced bool `json:"-"`
}

type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, sub *entity.QuizSubmission) error
}

type CRMService interface {
	UpsertContact(ctx context.Context, props hubspot.ContactProperties) error
	HasActiveBooking(ctx context.Context, email string) (bool, error)
}

type RecaptchaVerifier interface {
	Verify(ctx context.Context, token, action string) (bool, error)
}
