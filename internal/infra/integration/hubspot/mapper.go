package hubspot

import (
	"github.com/ailoapp/ailo-backend/internal/entity"
)

// MapOutcome translates the internal outcome into the portal's dropdown
// vocabulary. Unknown values fall back to Not-ready rather than failing the
// sync.
func MapOutcome(o entity.Outcome) string {
	switch o {
	case entity.OutcomeQualified:
		return OutcomeQualified
	case entity.OutcomeWaitlist:
		return OutcomeWaitlist
	default:
		return OutcomeNotReady
	}
}

func MapLocation(inRegion bool) string {
	if inRegion {
		return LocationMatchmaking
	}
	return LocationWaitlist
}

func mapAccess(o entity.Outcome) string {
	if o == entity.OutcomeQualified {
		return AccessInReview
	}
	return AccessRejected
}

// ContactFromSubmission builds the upsert payload for a quiz lead.
func ContactFromSubmission(sub *entity.QuizSubmission, inRegion bool) ContactProperties {
	return ContactProperties{
		FirstName:             sub.Name,
		Email:                 sub.Email,
		Phone:                 sub.Phone,
		LeadSource:            LeadSourceWebsite,
		Location:              MapLocation(inRegion),
		Intent:                sub.Intent,
		Availability:          sub.Availability,
		Investment:            sub.Investment,
		Timeline:              sub.Timeline,
		QuizOutcome:           MapOutcome(sub.Outcome),
		UserStatus:            UserStatusNoInfo,
		AccessToAiloUnlimited: mapAccess(sub.Outcome),
	}
}
