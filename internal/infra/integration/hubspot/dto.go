package hubspot

// Allowed values for the HubSpot dropdown properties. These must match the
// portal configuration exactly or the API rejects the write.
const (
	OutcomeQualified = "Qualified"
	OutcomeWaitlist  = "Waitlist"
	OutcomeNotReady  = "Not-ready"

	LocationMatchmaking = "Matchmaking Location"
	LocationWaitlist    = "Waitlist Location"

	LeadSourceWebsite = "Website"
	LeadSourceApp     = "App"

	UserStatusNoInfo = "No info"

	AccessInReview = "In Review"
	AccessRejected = "Rejected"

	CallStatusScheduled = "Call Scheduled"
)

// ContactProperties is the upsert payload for a quiz lead.
type ContactProperties struct {
	FirstName string `json:"firstname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	LeadSource string `json:"lead_source"`

	Location string `json:"location"`

	// Full answer text for q2-q5.
	Intent       string `json:"intent"`
	Availability string `json:"availability"`
	Investment   string `json:"investment"`
	Timeline     string `json:"timeline"`

	QuizOutcome string `json:"quiz_outcome"`

	UserStatus            string `json:"user_status"`
	AccessToAiloUnlimited string `json:"access_to_ailo_unlimited"`

	// Set by the Calendly booking pipeline, never by quiz submission.
	CallStatus string `json:"call_status,omitempty"`
}

type contactPayload struct {
	Properties ContactProperties `json:"properties"`
}

type callStatusPayload struct {
	Properties struct {
		CallStatus string `json:"call_status"`
	} `json:"properties"`
}

// Search request/response for the CRM v3 search endpoint.

type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties,omitempty"`
	Limit        int           `json:"limit,omitempty"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchResponse struct {
	Total   int `json:"total"`
	Results []struct {
		ID         string            `json:"id"`
		Properties map[string]string `json:"properties"`
	} `json:"results"`
}
