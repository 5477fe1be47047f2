package entity

import (
	"errors"
	"time"
)

// Outcome is the quiz classification result.
type Outcome string

const (
	OutcomeQualified Outcome = "qualified"
	OutcomeWaitlist  Outcome = "waitlist"
	OutcomeNotReady  Outcome = "not-ready"
)

// QuizAnswers maps a question slot (q1..q5) to the chosen answer letter.
// Slots may be missing while the quiz is in progress; scoring treats a
// missing slot as zero weight.
type QuizAnswers map[string]string

// QuizResult is the classifier output.
type QuizResult struct {
	Outcome Outcome `json:"outcome"`
	Score   int     `json:"score"`
}

// QuizSubmission is the persisted lead record. Append-only: a contact may
// retake the quiz, so email is intentionally not unique here.
type QuizSubmission struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location,omitempty"`
	Intent       string    `json:"intent,omitempty"`
	Availability string    `json:"availability,omitempty"`
	Investment   string    `json:"investment,omitempty"`
	Timeline     string    `json:"timeline,omitempty"`
	Outcome      Outcome   `json:"outcome"`
	LeadSource   string    `json:"lead_source"`
	CreatedAt    time.Time `json:"created_at"`
}

// ErrDuplicateEmail signals a unique-constraint collision on a subscriber
// table. Handlers translate it to 409.
var ErrDuplicateEmail = errors.New("email already subscribed")
