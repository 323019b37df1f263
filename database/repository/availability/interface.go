package availabilityRepo

import (
	"context"

	"lensbook/models"
)

// AvailabilityRepository manages the per-professional availability documents.
type AvailabilityRepository interface {
	// GetOrCreate fetches the availability document for a professional,
	// creating it with defaults on first access.
	GetOrCreate(ctx context.Context, professionalID string) (*models.Availability, error)
	// UpdateWeeklySchedule replaces the recurring weekly schedule.
	UpdateWeeklySchedule(ctx context.Context, professionalID string, schedule map[string]models.DaySchedule) error
	// AddBlockedDate records a blocked date; adding an existing date is rejected.
	AddBlockedDate(ctx context.Context, professionalID string, blocked models.BlockedDate) error
	// RemoveBlockedDate clears a blocked date.
	RemoveBlockedDate(ctx context.Context, professionalID, date string) error
	// SetSpecialDate adds a special date, replacing any existing entry for the same date.
	SetSpecialDate(ctx context.Context, professionalID string, special models.SpecialDate) error
	// RemoveSpecialDate clears a special date.
	RemoveSpecialDate(ctx context.Context, professionalID, date string) error
	// UpdateSettings applies new buffer/notice/window settings.
	UpdateSettings(ctx context.Context, professionalID string, settings models.AvailabilitySettings) error
}
