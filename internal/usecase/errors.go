package usecase

// Error codes surfaced to handlers.
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeCallAlreadyScheduled = "CALL_ALREADY_SCHEDULED"
	CodeDatabase             = "DATABASE_ERROR"
)

// DomainError is a business-rule rejection: retrying the same input will
// not help, the caller has to change something.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure: the input was fine, a
// collaborator was not. Surfaced as 500; recovery is a manual retry.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
