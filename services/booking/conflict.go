package booking

import (
	"context"

	"lensbook/utils"
)

// hasConflict reports whether [startTime, endTime) on the given date overlaps
// any of the professional's active bookings, excluding excludeBookingID (used
// during reschedule). Overlap is exact and half-open; buffer time only shapes
// offered slots, never this authoritative check. This is the single source of
// truth for both create and reschedule.
func (se *DefaultBookingEngine) hasConflict(ctx context.Context, professionalID, date, startTime, endTime, excludeBookingID string) (bool, error) {
	start, err := utils.TimeToMinutes(startTime)
	if err != nil {
		return false, err
	}
	end, err := utils.TimeToMinutes(endTime)
	if err != nil {
		return false, err
	}

	existing, err := se.Bookings.FindActiveByProfessionalAndDate(ctx, professionalID, date, excludeBookingID)
	if err != nil {
		return false, err
	}

	for _, b := range existing {
		bStart, err := utils.TimeToMinutes(b.StartTime)
		if err != nil {
			return false, err
		}
		bEnd, err := utils.TimeToMinutes(b.EndTime)
		if err != nil {
			return false, err
		}
		// Two half-open windows [a,b) and [c,d) overlap iff a < d and b > c.
		if start < bEnd && end > bStart {
			return true, nil
		}
	}
	return false, nil
}
