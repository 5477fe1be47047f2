package quiz

import (
	"github.com/ailoapp/ailo-backend/internal/entity"
)

// Scoring holds the business numbers behind the classifier: the per-answer
// weight table, the qualification cut and the letter that marks q1 as
// in-region. The numbers are policy, not algorithm — they are injected so
// marketing can retune them without touching scoring logic.
type Scoring struct {
	// Weights is keyed by question slot, then answer letter. Missing keys
	// weigh zero.
	Weights map[string]map[string]int

	// QualifiedThreshold is inclusive: score == threshold still qualifies.
	QualifiedThreshold int

	// HomeRegionAnswer is the q1 letter for the serviced region. Any other
	// q1 answer forces the waitlist outcome regardless of score.
	HomeRegionAnswer string
}

// DefaultScoring returns the table currently in production.
func DefaultScoring() Scoring {
	return Scoring{
		Weights: map[string]map[string]int{
			QuestionLocation:     {"A": 5, "B": 0, "C": 0},
			QuestionIntent:       {"A": 5, "B": 3, "C": 1, "D": 0},
			QuestionAvailability: {"A": 5, "B": 3, "C": 1},
			QuestionInvestment:   {"A": 5, "B": 3, "C": 1, "D": 0},
			QuestionTimeline:     {"A": 5, "B": 3, "C": 1},
		},
		QualifiedThreshold: 18,
		HomeRegionAnswer:   "A",
	}
}

// Calculate maps a set of answers to an outcome and a score. Pure: no I/O,
// same input always yields the same result. Missing or unknown answers
// contribute zero weight, so a partial set never panics.
//
// The location question is a hard gate: an out-of-region answer forces
// waitlist no matter what the other four answers add up to.
func (s Scoring) Calculate(answers entity.QuizAnswers) entity.QuizResult {
	score := 0
	for _, id := range QuestionIDs {
		letter, ok := answers[id]
		if !ok {
			continue
		}
		score += s.Weights[id][letter]
	}

	if answers[QuestionLocation] != s.HomeRegionAnswer {
		return entity.QuizResult{Outcome: entity.OutcomeWaitlist, Score: score}
	}

	outcome := entity.OutcomeNotReady
	if score >= s.QualifiedThreshold {
		outcome = entity.OutcomeQualified
	}
	return entity.QuizResult{Outcome: outcome, Score: score}
}

// InRegion reports whether the answer set places the lead inside the
// serviced region.
func (s Scoring) InRegion(answers entity.QuizAnswers) bool {
	return answers[QuestionLocation] == s.HomeRegionAnswer
}
