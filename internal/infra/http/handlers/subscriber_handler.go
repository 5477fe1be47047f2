package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"

	"github.com/ailoapp/ailo-backend/internal/entity"
	"github.com/ailoapp/ailo-backend/internal/infra/http/middleware"
)

// SubscriberMailer sends the subscription confirmations.
type SubscriberMailer interface {
	SendWaitlistConfirmation(to, city string) error
	SendNewsletterWelcome(to string) error
}

type SubscriberHandler struct {
	WaitlistRepo   entity.WaitlistRepositoryInterface
	NewsletterRepo entity.NewsletterRepositoryInterface
	Mailer         SubscriberMailer
	RateLimiter    *RateLimiter
}

func NewSubscriberHandler(
	waitlistRepo entity.WaitlistRepositoryInterface,
	newsletterRepo entity.NewsletterRepositoryInterface,
	mailer SubscriberMailer,
	limiter *RateLimiter,
) *SubscriberHandler {
	return &SubscriberHandler{
		WaitlistRepo:   waitlistRepo,
		NewsletterRepo: newsletterRepo,
		Mailer:         mailer,
		RateLimiter:    limiter,
	}
}

type waitlistRequest struct {
	Email string `json:"email"`
	City  string `json:"city,omitempty"`
}

type newsletterRequest struct {
	Email  string `json:"email"`
	Source string `json:"source,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// HandleWaitlist implements POST /waitlist.
func (h *SubscriberHandler) HandleWaitlist(w http.ResponseWriter, r *http.Request) {
	if allowed, _ := h.RateLimiter.Check(getClientIP(r)); !allowed {
		middleware.RecordRateLimited()
		writeError(w, http.StatusTooManyRequests, "rate_limited", "Too many requests. Please try again later.")
		return
	}

	var req waitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if !validEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Email is required", "")
		return
	}

	sub := &entity.WaitlistSubscriber{Email: req.Email, City: req.City}
	if err := h.WaitlistRepo.Create(r.Context(), sub); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "Email already on waitlist", "")
			return
		}
		log.Printf("❌ Waitlist insert failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to process subscription", err.Error())
		return
	}
	middleware.RecordSubscriber("waitlist")

	// Row is already committed; a failed confirmation email is reported but
	// never undoes the signup.
	if err := h.Mailer.SendWaitlistConfirmation(req.Email, req.City); err != nil {
		log.Printf("❌ Waitlist confirmation email failed for %s: %v", req.Email, err)
		middleware.RecordIntegrationError("smtp")
		writeError(w, http.StatusInternalServerError, "Failed to process subscription", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleNewsletter implements POST /newsletter.
func (h *SubscriberHandler) HandleNewsletter(w http.ResponseWriter, r *http.Request) {
	if allowed, _ := h.RateLimiter.Check(getClientIP(r)); !allowed {
		middleware.RecordRateLimited()
		writeError(w, http.StatusTooManyRequests, "rate_limited", "Too many requests. Please try again later.")
		return
	}

	var req newsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if !validEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Email is required", "")
		return
	}

	source := req.Source
	if source == "" {
		source = "not-ready"
	}

	sub := &entity.NewsletterSubscriber{Email: req.Email, Source: source}
	if err := h.NewsletterRepo.Create(r.Context(), sub); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "Email already subscribed", "")
			return
		}
		log.Printf("❌ Newsletter insert failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to process subscription", err.Error())
		return
	}
	middleware.RecordSubscriber("newsletter")

	if err := h.Mailer.SendNewsletterWelcome(req.Email); err != nil {
		log.Printf("❌ Newsletter welcome email failed for %s: %v", req.Email, err)
		middleware.RecordIntegrationError("smtp")
		writeError(w, http.StatusInternalServerError, "Failed to process subscription", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}
