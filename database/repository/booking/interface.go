package bookingRepo

import (
	"context"
	"time"

	"lensbook/models"
)

// BookingRepository persists booking records.
type BookingRepository interface {
	// Create inserts a new booking document.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a non-deleted booking by its ID.
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// Update replaces an existing booking document.
	Update(ctx context.Context, booking *models.Booking) error
	// SoftDelete marks a booking deleted without removing it.
	SoftDelete(ctx context.Context, bookingID string) error

	// FindActiveByProfessionalAndDate returns a professional's bookings for a
	// date whose status counts toward conflicts, optionally excluding one
	// booking (used during reschedule).
	FindActiveByProfessionalAndDate(ctx context.Context, professionalID, date, excludeBookingID string) ([]models.Booking, error)
	// FindByDateRange returns a professional's bookings with booking_date in
	// [from, to] inclusive.
	FindByDateRange(ctx context.Context, professionalID, from, to string) ([]models.Booking, error)
	// CountByDay aggregates per-day booking counts for a professional over a
	// date range.
	CountByDay(ctx context.Context, professionalID, from, to string) (map[string]int, error)
	// FindDueReminders returns confirmed, non-deleted, un-reminded bookings
	// whose date falls within [now, now+hoursAhead].
	FindDueReminders(ctx context.Context, now time.Time, hoursAhead int) ([]models.Booking, error)
	// MarkReminderSent flips the reminder flag for a booking.
	MarkReminderSent(ctx context.Context, bookingID string) error

	// FindByClient lists a client's bookings, newest first, optionally
	// filtered by status.
	FindByClient(ctx context.Context, clientID string, status models.Status) ([]models.Booking, error)
	// FindByProfessional lists a professional's bookings, newest first,
	// optionally filtered by status.
	FindByProfessional(ctx context.Context, professionalID string, status models.Status) ([]models.Booking, error)
	// FindUnassigned lists pending bookings that have no professional yet.
	FindUnassigned(ctx context.Context) ([]models.Booking, error)
}
