package availability

import "fmt"

// Slot lookup rejection reasons surfaced to callers.
const (
	ReasonTooFarInAdvance    = "too far in advance"
	ReasonInsufficientNotice = "insufficient notice"
)

// ValidationError signals malformed scheduling input (dates, times, durations).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
