package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ailoapp/ailo-backend/internal/infra/http/middleware"
	"github.com/ailoapp/ailo-backend/internal/infra/integration/calendly"
	"github.com/ailoapp/ailo-backend/internal/infra/queue"
)

type WebhookHandler struct {
	Producer queue.BookingProducerInterface
}

func NewWebhookHandler(producer queue.BookingProducerInterface) *WebhookHandler {
	return &WebhookHandler{Producer: producer}
}

// Handle implements POST /webhooks/calendly. It only validates and enqueues;
// the CRM write and confirmation email happen in the queue worker so a slow
// HubSpot never makes Calendly retry the webhook.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var event calendly.WebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	// Unknown event types are acknowledged and dropped.
	if event.Event != calendly.EventInviteeCreated {
		w.WriteHeader(http.StatusOK)
		return
	}

	if event.Payload.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required", "")
		return
	}

	payload := queue.BookingConfirmedPayload{
		Email:  event.Payload.Email,
		Name:   event.Payload.Name,
		Origin: "WEBHOOK_CALENDLY",
	}

	if err := h.Producer.PublishBookingConfirmed(r.Context(), payload); err != nil {
		log.Printf("❌ Failed to enqueue booking confirmation for %s: %v", payload.Email, err)
		middleware.RecordIntegrationError("rabbitmq")
		writeError(w, http.StatusInternalServerError, "Failed to process booking event", "")
		return
	}

	w.WriteHeader(http.StatusOK)
}
