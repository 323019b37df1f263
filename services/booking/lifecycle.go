package booking

import (
	"context"
	"fmt"

	"lensbook/models"
	"lensbook/utils"

	"go.uber.org/zap"
)

// guardTransition enforces the state machine: the target status must list the
// booking's current status as a valid source.
func guardTransition(b *models.Booking, target models.Status, sources ...models.Status) error {
	for _, s := range sources {
		if b.Status == s {
			return nil
		}
	}
	return &InvalidTransitionError{Current: b.Status, Attempted: target}
}

// ConfirmBooking moves a pending booking to confirmed. Professional-only.
// Bumps the professional's booking stat and notifies the client.
func (se *DefaultBookingEngine) ConfirmBooking(ctx context.Context, bookingID, professionalID string) (*models.Booking, error) {
	b, err := se.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := se.requireProfessional(b, professionalID); err != nil {
		return nil, err
	}
	if err := guardTransition(b, models.StatusConfirmed, models.StatusPending); err != nil {
		return nil, err
	}

	b.Apply(models.StatusChange{Status: models.StatusConfirmed, At: se.now()})
	if err := se.Bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if err := se.Professionals.IncrementBookingCount(ctx, b.ProfessionalID); err != nil {
		utils.GetLogger().Error("failed to increment booking count",
			zap.String("professionalID", b.ProfessionalID), zap.Error(err))
	}
	se.notifyClient(ctx, b, models.Notification{
		Type:  "booking_confirmed",
		Title: "Booking confirmed",
		Body: fmt.Sprintf("Your %s booking on %s at %s is confirmed.",
			b.EventType, formatBookingDate(b.BookingDate), b.StartTime),
	})
	return b, nil
}

// RejectBooking moves a pending booking to rejected. Professional-only, and a
// reason is required; it is stored verbatim and surfaced to the client.
func (se *DefaultBookingEngine) RejectBooking(ctx context.Context, bookingID, professionalID, reason string) (*models.Booking, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}
	b, err := se.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := se.requireProfessional(b, professionalID); err != nil {
		return nil, err
	}
	if err := guardTransition(b, models.StatusRejected, models.StatusPending); err != nil {
		return nil, err
	}

	b.Apply(models.StatusChange{Status: models.StatusRejected, At: se.now(), Reason: reason})
	if err := se.Bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	se.notifyClient(ctx, b, models.Notification{
		Type:  "booking_rejected",
		Title: "Booking declined",
		Body:  fmt.Sprintf("Your booking on %s was declined: %s", formatBookingDate(b.BookingDate), reason),
	})
	return b, nil
}

// CancelBooking cancels an active booking. Either party may cancel; the
// counterparty is notified. Forbidden once completed, cancelled or rejected.
func (se *DefaultBookingEngine) CancelBooking(ctx context.Context, bookingID, actorID, reason string) (*models.Booking, error) {
	b, err := se.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actorID != b.ClientID && (b.ProfessionalID == "" || actorID != b.ProfessionalID) {
		return nil, ErrActorNotAllowed
	}
	if err := guardTransition(b, models.StatusCancelled,
		models.StatusPending, models.StatusConfirmed, models.StatusProcessing); err != nil {
		return nil, err
	}

	b.Apply(models.StatusChange{Status: models.StatusCancelled, At: se.now(), Reason: reason})
	if err := se.Bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	n := models.Notification{
		Type:  "booking_cancelled",
		Title: "Booking cancelled",
		Body:  fmt.Sprintf("The booking on %s at %s was cancelled.", formatBookingDate(b.BookingDate), b.StartTime),
	}
	if reason != "" {
		n.Body = fmt.Sprintf("%s Reason: %s", n.Body, reason)
	}
	if actorID == b.ClientID {
		se.notifyProfessional(ctx, b, n)
	} else {
		se.notifyClient(ctx, b, n)
	}
	return b, nil
}

// RescheduleBooking moves an active booking to a new window. The new window
// must pass the conflict check, excluding the booking's own current slot.
func (se *DefaultBookingEngine) RescheduleBooking(ctx context.Context, bookingID string, input models.RescheduleInput) (*models.Booking, error) {
	startTime, endTime, err := validateWindow(input.BookingDate, input.StartTime, input.Duration)
	if err != nil {
		return nil, err
	}

	b, err := se.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := guardTransition(b, models.StatusRescheduled,
		models.StatusPending, models.StatusConfirmed, models.StatusProcessing); err != nil {
		return nil, err
	}

	if b.ProfessionalID != "" {
		unlock := se.locks.lock(b.ProfessionalID, input.BookingDate)
		defer unlock()

		conflict, err := se.hasConflict(ctx, b.ProfessionalID, input.BookingDate, startTime, endTime, b.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, &SlotUnavailableError{
				ProfessionalID: b.ProfessionalID,
				Date:           input.BookingDate,
				StartTime:      startTime,
				EndTime:        endTime,
			}
		}
	}

	b.BookingDate = input.BookingDate
	b.StartTime = startTime
	b.EndTime = endTime
	b.Duration = input.Duration
	b.Apply(models.StatusChange{Status: models.StatusRescheduled, At: se.now()})
	if err := se.Bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	n := models.Notification{
		Type:  "booking_rescheduled",
		Title: "Booking rescheduled",
		Body: fmt.Sprintf("The booking moved to %s at %s.",
			formatBookingDate(b.BookingDate), b.StartTime),
	}
	se.notifyClient(ctx, b, n)
	if b.ProfessionalID != "" {
		se.notifyProfessional(ctx, b, n)
	}
	return b, nil
}

// CompleteBooking marks a confirmed booking completed. Professional-only and
// forbidden from any other state. The client is asked for a review.
func (se *DefaultBookingEngine) CompleteBooking(ctx context.Context, bookingID, professionalID string) (*models.Booking, error) {
	b, err := se.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := se.requireProfessional(b, professionalID); err != nil {
		return nil, err
	}
	if err := guardTransition(b, models.StatusCompleted, models.StatusConfirmed); err != nil {
		return nil, err
	}

	b.Apply(models.StatusChange{Status: models.StatusCompleted, At: se.now()})
	if err := se.Bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	se.notifyClient(ctx, b, models.Notification{
		Type:  "review_request",
		Title: "How was your session?",
		Body:  "Your booking is complete. Leave a review to help others find great professionals.",
		Data:  map[string]string{"bookingId": b.ID},
	})
	return b, nil
}

// AssignProfessional attaches an approved professional to an unassigned
// pending booking, moving it to processing. Admin-only; both parties are
// notified.
func (se *DefaultBookingEngine) AssignProfessional(ctx context.Context, bookingID, professionalID string) (*models.Booking, error) {
	b, err := se.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := guardTransition(b, models.StatusProcessing, models.StatusPending); err != nil {
		return nil, err
	}
	if b.ProfessionalID != "" {
		return nil, ErrAlreadyAssigned
	}

	prof, err := se.Professionals.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if !prof.IsApproved() {
		return nil, ErrProfessionalNotApproved
	}

	unlock := se.locks.lock(professionalID, b.BookingDate)
	defer unlock()

	conflict, err := se.hasConflict(ctx, professionalID, b.BookingDate, b.StartTime, b.EndTime, b.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, &SlotUnavailableError{
			ProfessionalID: professionalID,
			Date:           b.BookingDate,
			StartTime:      b.StartTime,
			EndTime:        b.EndTime,
		}
	}

	b.ProfessionalID = professionalID
	b.Apply(models.StatusChange{Status: models.StatusProcessing, At: se.now()})
	if err := se.Bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	se.notifyProfessional(ctx, b, models.Notification{
		Type:  "booking_assigned",
		Title: "New booking assigned",
		Body: fmt.Sprintf("You were assigned a %s booking on %s at %s.",
			b.EventType, formatBookingDate(b.BookingDate), b.StartTime),
	})
	se.notifyClient(ctx, b, models.Notification{
		Type:  "professional_assigned",
		Title: "Professional assigned",
		Body: fmt.Sprintf("%s will handle your booking on %s.",
			prof.Name, formatBookingDate(b.BookingDate)),
	})
	return b, nil
}

func (se *DefaultBookingEngine) requireProfessional(b *models.Booking, professionalID string) error {
	if b.ProfessionalID == "" || professionalID != b.ProfessionalID {
		return ErrActorNotAllowed
	}
	return nil
}
