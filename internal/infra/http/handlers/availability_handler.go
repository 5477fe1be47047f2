package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/ailoapp/ailo-backend/internal/infra/http/middleware"
)

// SlotCounter is the scheduling-widget contract. Satisfied by the calendly
// client.
type SlotCounter interface {
	Configured() bool
	WeeklySlotCount(ctx context.Context) (int, error)
}

type AvailabilityHandler struct {
	Calendly SlotCounter
}

func NewAvailabilityHandler(calendly SlotCounter) *AvailabilityHandler {
	return &AvailabilityHandler{Calendly: calendly}
}

type availabilityResponse struct {
	Slots *int   `json:"slots"`
	Error string `json:"error,omitempty"`
}

// Handle implements GET /calendly-availability. The slot counter is a nice
// to have on the booking page, so every failure degrades to {slots: null}
// with a 200 rather than breaking the page.
func (h *AvailabilityHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.Calendly.Configured() {
		writeJSON(w, http.StatusOK, availabilityResponse{Slots: nil, Error: "API key not configured"})
		return
	}

	count, err := h.Calendly.WeeklySlotCount(r.Context())
	if err != nil {
		log.Printf("❌ Calendly availability lookup failed: %v", err)
		middleware.RecordIntegrationError("calendly")
		writeJSON(w, http.StatusOK, availabilityResponse{Slots: nil, Error: "Failed to fetch availability"})
		return
	}

	writeJSON(w, http.StatusOK, availabilityResponse{Slots: &count})
}
