package booking

import (
	"context"
	"fmt"
	"time"

	"lensbook/models"
	"lensbook/utils"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CreateBooking validates the requested window, checks it against the
// professional's existing active bookings, and persists a pending booking.
func (se *DefaultBookingEngine) CreateBooking(ctx context.Context, clientID string, input models.BookingInput) (*models.Booking, error) {
	if clientID == "" {
		return nil, NewValidationError("clientId", "is required")
	}
	startTime, endTime, err := validateWindow(input.BookingDate, input.StartTime, input.Duration)
	if err != nil {
		return nil, err
	}

	// A booking may be created without a professional; it then waits for
	// admin assignment and skips the conflict check until one is chosen.
	if input.ProfessionalID != "" {
		prof, err := se.Professionals.FindByID(ctx, input.ProfessionalID)
		if err != nil {
			return nil, err
		}
		if !prof.IsApproved() {
			return nil, ErrProfessionalNotApproved
		}

		unlock := se.locks.lock(input.ProfessionalID, input.BookingDate)
		defer unlock()

		conflict, err := se.hasConflict(ctx, input.ProfessionalID, input.BookingDate, startTime, endTime, "")
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, &SlotUnavailableError{
				ProfessionalID: input.ProfessionalID,
				Date:           input.BookingDate,
				StartTime:      startTime,
				EndTime:        endTime,
			}
		}
	}

	now := se.now()
	pricing := input.Pricing
	pricing.TotalAmount = ComputeTotalAmount(pricing)

	booking := &models.Booking{
		ID:             uuid.New().String(),
		ClientID:       clientID,
		ProfessionalID: input.ProfessionalID,
		BookingDate:    input.BookingDate,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       input.Duration,
		EventType:      input.EventType,
		Location:       input.Location,
		City:           input.City,
		State:          input.State,
		Pincode:        input.Pincode,
		Pricing:        pricing,
		Status:         models.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := se.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if booking.ProfessionalID != "" {
		se.notifyProfessional(ctx, booking, models.Notification{
			Type:  "booking_requested",
			Title: "New booking request",
			Body: fmt.Sprintf("You have a new %s request on %s at %s.",
				booking.EventType, formatBookingDate(booking.BookingDate), booking.StartTime),
		})
	}

	return booking, nil
}

// validateWindow checks the date/time/duration triple and returns the
// normalized start and derived end time.
func validateWindow(date, start string, duration int) (string, string, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", "", NewValidationError("bookingDate", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date))
	}
	startMinutes, err := utils.TimeToMinutes(start)
	if err != nil {
		return "", "", NewValidationError("startTime", err.Error())
	}
	if duration <= 0 {
		return "", "", NewValidationError("duration", "must be a positive number of minutes")
	}
	if startMinutes+duration > 24*60 {
		return "", "", NewValidationError("duration", "booking may not run past midnight")
	}
	return utils.MinutesToTime(startMinutes), utils.MinutesToTime(startMinutes + duration), nil
}
