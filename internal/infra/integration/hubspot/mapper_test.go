package hubspot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ailoapp/ailo-backend/internal/entity"
)

func TestMapOutcomeVocabulary(t *testing.T) {
	assert.Equal(t, "Qualified", MapOutcome(entity.OutcomeQualified))
	assert.Equal(t, "Waitlist", MapOutcome(entity.OutcomeWaitlist))
	assert.Equal(t, "Not-ready", MapOutcome(entity.OutcomeNotReady))
	assert.Equal(t, "Not-ready", MapOutcome(entity.Outcome("garbage")))
}

func TestMapLocation(t *testing.T) {
	assert.Equal(t, "Matchmaking Location", MapLocation(true))
	assert.Equal(t, "Waitlist Location", MapLocation(false))
}

func TestContactFromSubmission(t *testing.T) {
	sub := &entity.QuizSubmission{
		Name:         "Jane Smith",
		Email:        "jane@example.com",
		Phone:        "555-123-4567",
		Intent:       "A life partner",
		Availability: "Whatever it takes",
		Investment:   "Ready to invest in finding the right person",
		Timeline:     "As soon as possible",
		Outcome:      entity.OutcomeQualified,
	}

	props := ContactFromSubmission(sub, true)

	assert.Equal(t, "Jane Smith", props.FirstName)
	assert.Equal(t, "Website", props.LeadSource)
	assert.Equal(t, "Matchmaking Location", props.Location)
	assert.Equal(t, "Qualified", props.QuizOutcome)
	assert.Equal(t, "No info", props.UserStatus)
	assert.Equal(t, "In Review", props.AccessToAiloUnlimited)
	assert.Empty(t, props.CallStatus)

	sub.Outcome = entity.OutcomeWaitlist
	props = ContactFromSubmission(sub, false)

	assert.Equal(t, "Waitlist Location", props.Location)
	assert.Equal(t, "Waitlist", props.QuizOutcome)
	assert.Equal(t, "Rejected", props.AccessToAiloUnlimited)
}
