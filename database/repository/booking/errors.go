package bookingRepo

import "errors"

// ErrBookingNotFound is returned when no non-deleted booking matches the ID.
var ErrBookingNotFound = errors.New("booking not found")
