package availabilityRepo

import "errors"

// ErrDateAlreadyBlocked is returned when a blocked date already exists for the
// requested calendar date.
var ErrDateAlreadyBlocked = errors.New("date is already blocked")
