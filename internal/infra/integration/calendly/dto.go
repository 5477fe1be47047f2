package calendly

type currentUserResponse struct {
	Resource struct {
		URI string `json:"uri"`
	} `json:"resource"`
}

type eventTypesResponse struct {
	Collection []EventType `json:"collection"`
}

type EventType struct {
	URI           string `json:"uri"`
	SchedulingURL string `json:"scheduling_url"`
	Active        bool   `json:"active"`
}

type availableTimesResponse struct {
	Collection []struct {
		StartTime string `json:"start_time"`
		Status    string `json:"status"`
	} `json:"collection"`
}

// WebhookEvent is the payload Calendly posts when an invitee books a call.
// Only the fields the booking pipeline needs are decoded.
type WebhookEvent struct {
	Event   string `json:"event"` // e.g. "invitee.created"
	Payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"payload"`
}

const EventInviteeCreated = "invitee.created"
