package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ailoapp/ailo-backend/internal/entity"
	"github.com/ailoapp/ailo-backend/internal/infra/integration/hubspot"
	"github.com/ailoapp/ailo-backend/internal/quiz"
)

const recaptchaAction = "quiz_submit"

// SubmitQuizUseCase runs the full submission pipeline:
// validate → reCAPTCHA (soft) → score → duplicate-booking guard → persist →
// best-effort CRM sync. The storage write is the authoritative step; the CRM
// upsert may fail without failing the request, so a HubSpot outage never
// loses a lead.
type SubmitQuizUseCase struct {
	Repo      SubmissionRepositoryInterface
	CRM       CRMService
	Recaptcha RecaptchaVerifier // optional
	Scoring   quiz.Scoring
}

func NewSubmitQuizUseCase(
	repo SubmissionRepositoryInterface,
	crm CRMService,
	recaptcha RecaptchaVerifier,
	scoring quiz.Scoring,
) *SubmitQuizUseCase {
	return &SubmitQuizUseCase{
		Repo:      repo,
		CRM:       crm,
		Recaptcha: recaptcha,
		Scoring:   scoring,
	}
}

func (uc *SubmitQuizUseCase) Execute(ctx context.Context, input SubmitQuizInput) (*SubmitQuizOutput, error) {
	validationErrors := ValidateSubmitQuizInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: errMsg,
		}
	}

	// Soft anti-abuse check. A failed or errored verification is logged and
	// the submission continues: losing a real lead to a captcha outage costs
	// more than letting the odd bot row through.
	if uc.Recaptcha != nil && input.RecaptchaToken != "" {
		ok, err := uc.Recaptcha.Verify(ctx, input.RecaptchaToken, recaptchaAction)
		if err != nil {
			log.Printf("⚠️ reCAPTCHA verification error for %s: %v", input.Email, err)
		} else if !ok {
			log.Printf("⚠️ reCAPTCHA rejected token for %s, continuing anyway", input.Email)
		}
	}

	result := uc.Scoring.Calculate(input.Answers)
	if input.ClientOutcome != "" && input.ClientOutcome != string(result.Outcome) {
		log.Printf("⚠️ Outcome mismatch for %s: client=%s server=%s", input.Email, input.ClientOutcome, result.Outcome)
	}

	// Duplicate suppression is a courtesy, not a correctness guarantee:
	// any lookup failure admits the submission.
	booked, err := uc.CRM.HasActiveBooking(ctx, input.Email)
	if err != nil {
		log.Printf("⚠️ Booking lookup failed for %s, admitting submission: %v", input.Email, err)
		booked = false
	}
	if booked {
		return nil, &DomainError{
			Code:    CodeCallAlreadyScheduled,
			Message: "a discovery call is already scheduled for this email",
		}
	}

	submission := &entity.QuizSubmission{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Location:     quiz.AnswerText(quiz.QuestionLocation, input.Answers[quiz.QuestionLocation]),
		Intent:       quiz.AnswerText(quiz.QuestionIntent, input.Answers[quiz.QuestionIntent]),
		Availability: quiz.AnswerText(quiz.QuestionAvailability, input.Answers[quiz.QuestionAvailability]),
		Investment:   quiz.AnswerText(quiz.QuestionInvestment, input.Answers[quiz.QuestionInvestment]),
		Timeline:     quiz.AnswerText(quiz.QuestionTimeline, input.Answers[quiz.QuestionTimeline]),
		Outcome:      result.Outcome,
		LeadSource:   "website",
		CreatedAt:    time.Now(),
	}

	if err := uc.Repo.Create(ctx, submission); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to persist quiz submission: " + err.Error(),
		}
	}

	output := &SubmitQuizOutput{
		Outcome:   result.Outcome,
		Score:     result.Score,
		CRMSynced: true,
	}

	props := hubspot.ContactFromSubmission(submission, uc.Scoring.InRegion(input.Answers))
	if err := uc.CRM.UpsertContact(ctx, props); err != nil {
		log.Printf("⚠️ HubSpot sync failed for %s (lead is persisted): %v", input.Email, err)
		output.CRMSynced = false
	}

	return output, nil
}
