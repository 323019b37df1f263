package availability

import (
	"context"
	"time"

	availabilityRepo "lensbook/database/repository/availability"
	bookingRepo "lensbook/database/repository/booking"
	"lensbook/models"
)

// SlotStepMinutes is the fixed granularity at which candidate windows are
// generated inside a base slot. Not configurable per professional.
const SlotStepMinutes = 30

// AvailabilityService manages per-professional schedules and computes
// bookable windows.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, professionalID string) (*models.Availability, error)
	UpdateWeeklySchedule(ctx context.Context, professionalID string, schedule map[string]models.DaySchedule) error
	AddBlockedDate(ctx context.Context, professionalID string, blocked models.BlockedDate) error
	RemoveBlockedDate(ctx context.Context, professionalID, date string) error
	SetSpecialDate(ctx context.Context, professionalID string, special models.SpecialDate) error
	RemoveSpecialDate(ctx context.Context, professionalID, date string) error
	UpdateSettings(ctx context.Context, professionalID string, settings models.AvailabilitySettings) error

	GetAvailableSlots(ctx context.Context, professionalID, date string, duration int) (*models.AvailableSlotsResult, error)
	GetMonthlyAvailability(ctx context.Context, professionalID string, year, month int) ([]models.CalendarDay, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo     availabilityRepo.AvailabilityRepository
	Bookings bookingRepo.BookingRepository
	Now      func() time.Time // injected clock for notice/window checks
}

func (svc *DefaultAvailabilityService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

// GetAvailability returns the professional's availability document, creating
// it with defaults on first access.
func (svc *DefaultAvailabilityService) GetAvailability(ctx context.Context, professionalID string) (*models.Availability, error) {
	return svc.Repo.GetOrCreate(ctx, professionalID)
}
