package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/ailoapp/ailo-backend/internal/infra/http/middleware"
	"github.com/ailoapp/ailo-backend/internal/usecase"
)

// QuizSubmitter is the orchestrator contract the handler depends on.
type QuizSubmitter interface {
	Execute(ctx context.Context, input usecase.SubmitQuizInput) (*usecase.SubmitQuizOutput, error)
}

type QuizHandler struct {
	SubmitQuizUC QuizSubmitter
	RateLimiter  *RateLimiter
}

func NewQuizHandler(uc QuizSubmitter, limiter *RateLimiter) *QuizHandler {
	return &QuizHandler{
		SubmitQuizUC: uc,
		RateLimiter:  limiter,
	}
}

type quizSubmitResponse struct {
	Success bool   `json:"success"`
	Outcome string `json:"outcome"`
	Score   int    `json:"score"`
}

// Handle implements POST /quiz-submit.
func (h *QuizHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if allowed, _ := h.RateLimiter.Check(getClientIP(r)); !allowed {
		middleware.RecordRateLimited()
		writeError(w, http.StatusTooManyRequests, "rate_limited", "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitQuizInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	output, err := h.SubmitQuizUC.Execute(r.Context(), input)
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	middleware.RecordQuizSubmission(string(output.Outcome))
	if !output.CRMSynced {
		middleware.RecordIntegrationError("hubspot")
	}

	writeJSON(w, http.StatusOK, quizSubmitResponse{
		Success: true,
		Outcome: string(output.Outcome),
		Score:   output.Score,
	})
}

func (h *QuizHandler) writeSubmitError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		switch domainErr.Code {
		case usecase.CodeCallAlreadyScheduled:
			// Expected path, not a failure: the front end shows the
			// "you already have a call" screen off this exact string.
			writeError(w, http.StatusConflict, "call_already_scheduled", domainErr.Message)
		default:
			writeError(w, http.StatusBadRequest, "validation_failed", domainErr.Message)
		}
		return
	}

	log.Printf("❌ Quiz submission failed: %v", err)
	writeError(w, http.StatusInternalServerError, "submission_failed", "Something went wrong. Please try again.")
}
