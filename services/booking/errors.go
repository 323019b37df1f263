package booking

import (
	"errors"
	"fmt"

	"lensbook/models"
)

var (
	// ErrProfessionalNotApproved is returned when a booking targets a
	// professional who is not in the approved state.
	ErrProfessionalNotApproved = errors.New("professional is not approved for bookings")
	// ErrReasonRequired is returned when a rejection carries no reason.
	ErrReasonRequired = errors.New("a reason is required to reject a booking")
	// ErrAlreadyAssigned is returned when assignment targets a booking that
	// already has a professional.
	ErrAlreadyAssigned = errors.New("booking already has a professional assigned")
	// ErrActorNotAllowed is returned when the actor is neither the booking's
	// client nor its professional for the attempted action.
	ErrActorNotAllowed = errors.New("actor is not allowed to perform this action on the booking")
)

// SlotUnavailableError signals that the requested window overlaps an existing
// active booking.
type SlotUnavailableError struct {
	ProfessionalID string
	Date           string
	StartTime      string
	EndTime        string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot %s-%s on %s is unavailable for professional %s",
		e.StartTime, e.EndTime, e.Date, e.ProfessionalID)
}

// InvalidTransitionError signals a state-machine violation. It is a business
// error, never retried.
type InvalidTransitionError struct {
	Current   models.Status
	Attempted models.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %q to %q", e.Current, e.Attempted)
}

// ValidationError signals a malformed booking payload.
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
