package booking

import (
	"context"
	"time"

	bookingRepo "lensbook/database/repository/booking"
	professionalRepo "lensbook/database/repository/professional"
	"lensbook/models"
	"lensbook/services/notification"
)

// BookingService drives bookings through their lifecycle. All booking
// mutation goes through these methods so status, timestamps and side effects
// stay together.
type BookingService interface {
	CreateBooking(ctx context.Context, clientID string, input models.BookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID, professionalID string) (*models.Booking, error)
	RejectBooking(ctx context.Context, bookingID, professionalID, reason string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID, reason string) (*models.Booking, error)
	RescheduleBooking(ctx context.Context, bookingID string, input models.RescheduleInput) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID, professionalID string) (*models.Booking, error)
	AssignProfessional(ctx context.Context, bookingID, professionalID string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	ListClientBookings(ctx context.Context, clientID string, status models.Status) ([]models.Booking, error)
	ListUnassignedBookings(ctx context.Context) ([]models.Booking, error)
	ListProfessionalBookings(ctx context.Context, professionalID string, status models.Status) ([]models.Booking, error)
	RankCandidates(ctx context.Context, bookingID string) ([]RankedProfessional, error)
}

// DefaultBookingEngine is the production implementation.
type DefaultBookingEngine struct {
	Bookings      bookingRepo.BookingRepository
	Professionals professionalRepo.ProfessionalRepository
	Notifier      notification.NotificationService
	Now           func() time.Time // injected clock
	locks         scheduleLocks    // serializes writes per (professional, date)
}

func (se *DefaultBookingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

// GetBooking fetches a booking by ID.
func (se *DefaultBookingEngine) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return se.Bookings.GetByID(ctx, bookingID)
}

// DeleteBooking soft-deletes a booking. The record stays for audit; it no
// longer appears in lookups or conflict checks.
func (se *DefaultBookingEngine) DeleteBooking(ctx context.Context, bookingID string) error {
	if _, err := se.Bookings.GetByID(ctx, bookingID); err != nil {
		return err
	}
	return se.Bookings.SoftDelete(ctx, bookingID)
}

// ListClientBookings lists a client's bookings, optionally filtered by status.
func (se *DefaultBookingEngine) ListClientBookings(ctx context.Context, clientID string, status models.Status) ([]models.Booking, error) {
	return se.Bookings.FindByClient(ctx, clientID, status)
}

// ListUnassignedBookings lists pending bookings waiting for a professional,
// the admin assignment queue.
func (se *DefaultBookingEngine) ListUnassignedBookings(ctx context.Context) ([]models.Booking, error) {
	return se.Bookings.FindUnassigned(ctx)
}

// ListProfessionalBookings lists a professional's bookings, optionally
// filtered by status.
func (se *DefaultBookingEngine) ListProfessionalBookings(ctx context.Context, professionalID string, status models.Status) ([]models.Booking, error) {
	return se.Bookings.FindByProfessional(ctx, professionalID, status)
}
