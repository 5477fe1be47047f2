package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ailoapp/ailo-backend/internal/entity"
)

func TestCalculateQualified(t *testing.T) {
	s := DefaultScoring()

	// In-region with strong answers everywhere else.
	answers := entity.QuizAnswers{"q1": "A", "q2": "B", "q3": "A", "q4": "A", "q5": "A"}

	result := s.Calculate(answers)

	assert.Equal(t, entity.OutcomeQualified, result.Outcome)
	assert.Equal(t, 5+3+5+5+5, result.Score)
}

func TestCalculateNotReady(t *testing.T) {
	s := DefaultScoring()

	// In-region but weak commitment answers.
	answers := entity.QuizAnswers{"q1": "A", "q2": "D", "q3": "C", "q4": "D", "q5": "C"}

	result := s.Calculate(answers)

	assert.Equal(t, entity.OutcomeNotReady, result.Outcome)
	assert.Equal(t, 5+0+1+0+1, result.Score)
}

func TestOutOfRegionAlwaysWaitlist(t *testing.T) {
	s := DefaultScoring()

	// Perfect answers on q2-q5 must not beat the location gate.
	for _, q1 := range []string{"B", "C"} {
		answers := entity.QuizAnswers{"q1": q1, "q2": "A", "q3": "A", "q4": "A", "q5": "A"}

		result := s.Calculate(answers)

		assert.Equal(t, entity.OutcomeWaitlist, result.Outcome, "q1=%s", q1)
	}
}

func TestMissingLocationTreatedAsOutOfRegion(t *testing.T) {
	s := DefaultScoring()

	result := s.Calculate(entity.QuizAnswers{"q2": "A", "q3": "A", "q4": "A", "q5": "A"})

	assert.Equal(t, entity.OutcomeWaitlist, result.Outcome)
}

func TestMissingAnswersWeighZero(t *testing.T) {
	s := DefaultScoring()

	result := s.Calculate(entity.QuizAnswers{"q1": "A"})

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, entity.OutcomeNotReady, result.Outcome)

	// Unknown letters weigh zero too.
	result = s.Calculate(entity.QuizAnswers{"q1": "A", "q2": "Z"})
	assert.Equal(t, 5, result.Score)
}

func TestThresholdIsInclusive(t *testing.T) {
	s := Scoring{
		Weights: map[string]map[string]int{
			QuestionLocation: {"A": 5},
			QuestionIntent:   {"A": 5},
		},
		QualifiedThreshold: 10,
		HomeRegionAnswer:   "A",
	}

	// Exactly at the cut resolves toward qualified.
	result := s.Calculate(entity.QuizAnswers{"q1": "A", "q2": "A"})
	assert.Equal(t, entity.OutcomeQualified, result.Outcome)
	assert.Equal(t, 10, result.Score)

	// One below stays not-ready.
	s.QualifiedThreshold = 11
	result = s.Calculate(entity.QuizAnswers{"q1": "A", "q2": "A"})
	assert.Equal(t, entity.OutcomeNotReady, result.Outcome)
}

func TestCalculateIsPure(t *testing.T) {
	s := DefaultScoring()
	answers := entity.QuizAnswers{"q1": "A", "q2": "B", "q3": "B", "q4": "B", "q5": "B"}

	first := s.Calculate(answers)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, s.Calculate(answers))
	}
}

// Raising any single answer's weight, holding the rest fixed, never lowers
// the score and never demotes a qualified outcome.
func TestScoreMonotonicInAnswerWeight(t *testing.T) {
	s := DefaultScoring()
	base := entity.QuizAnswers{"q1": "A", "q2": "B", "q3": "B", "q4": "B", "q5": "B"}
	baseResult := s.Calculate(base)

	for _, id := range []string{"q2", "q3", "q4", "q5"} {
		upgraded := entity.QuizAnswers{}
		for k, v := range base {
			upgraded[k] = v
		}
		upgraded[id] = "A" // highest-weight option on every question

		result := s.Calculate(upgraded)

		assert.GreaterOrEqual(t, result.Score, baseResult.Score)
		if baseResult.Outcome == entity.OutcomeQualified {
			assert.Equal(t, entity.OutcomeQualified, result.Outcome)
		}
	}
}

func TestAnswerText(t *testing.T) {
	assert.Equal(t, "South Florida (Miami to Palm Beach)", AnswerText("q1", "A"))
	assert.Equal(t, "A life partner", AnswerText("q2", "A"))
	assert.Equal(t, "", AnswerText("q2", "Z"))
	assert.Equal(t, "", AnswerText("q9", "A"))
}
