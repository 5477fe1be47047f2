package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ailoapp/ailo-backend/internal/entity"
	"github.com/ailoapp/ailo-backend/internal/usecase"
)

func TestValidateSubmitQuizInputValid(t *testing.T) {
	errs := usecase.ValidateSubmitQuizInput(usecase.SubmitQuizInput{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Phone:   "(555) 123-4567",
		Answers: entity.QuizAnswers{"q1": "A"},
	})
	assert.Empty(t, errs)
}

func TestValidateSubmitQuizInputMissingFields(t *testing.T) {
	errs := usecase.ValidateSubmitQuizInput(usecase.SubmitQuizInput{})

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
	assert.True(t, fields["answers"])
}

func TestValidateSubmitQuizInputBadEmail(t *testing.T) {
	errs := usecase.ValidateSubmitQuizInput(usecase.SubmitQuizInput{
		Name:    "Jane",
		Email:   "not-an-email",
		Answers: entity.QuizAnswers{"q1": "A"},
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestValidateSubmitQuizInputPhoneIsLoose(t *testing.T) {
	// Empty phone is fine; a present one just needs a plausible digit count.
	errs := usecase.ValidateSubmitQuizInput(usecase.SubmitQuizInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Answers: entity.QuizAnswers{"q1": "A"},
	})
	assert.Empty(t, errs)

	errs = usecase.ValidateSubmitQuizInput(usecase.SubmitQuizInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "123",
		Answers: entity.QuizAnswers{"q1": "A"},
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
}
