package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ailoapp/ailo-backend/internal/infra/http/middleware"
)

// BookingMailer sends the direct (non-webhook) booking confirmation.
type BookingMailer interface {
	SendBookingConfirmation(to, name string) error
}

type BookingHandler struct {
	Mailer BookingMailer
}

func NewBookingHandler(mailer BookingMailer) *BookingHandler {
	return &BookingHandler{Mailer: mailer}
}

type bookingConfirmationRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Handle implements POST /send-booking-confirmation. The book-call page
// calls this after the Calendly embed reports a completed booking.
func (h *BookingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req bookingConfirmationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if req.Email == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Email and name are required", "")
		return
	}

	if err := h.Mailer.SendBookingConfirmation(req.Email, req.Name); err != nil {
		log.Printf("❌ Booking confirmation email failed for %s: %v", req.Email, err)
		middleware.RecordIntegrationError("smtp")
		writeError(w, http.StatusInternalServerError, "Failed to send confirmation email", "")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
