package availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lensbook/models"
	"lensbook/utils"
)

const dateLayout = "2006-01-02"

var weekdayNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// ResolveDaySlots resolves the base slots for a calendar date: blocked dates
// win, then special-date overrides, then the weekly schedule entry.
func ResolveDaySlots(avail *models.Availability, date string) (slots []models.SlotWindow, blocked bool) {
	for _, b := range avail.BlockedDates {
		if b.Date == date {
			return nil, true
		}
	}
	for _, s := range avail.SpecialDates {
		if s.Date == date {
			return s.Slots, false
		}
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, false
	}
	entry, ok := avail.WeeklySchedule[strings.ToLower(day.Weekday().String())]
	if !ok || !entry.IsAvailable {
		return nil, false
	}
	return entry.Slots, false
}

// UpdateWeeklySchedule validates and replaces the recurring weekly schedule.
func (svc *DefaultAvailabilityService) UpdateWeeklySchedule(ctx context.Context, professionalID string, schedule map[string]models.DaySchedule) error {
	normalized := make(map[string]models.DaySchedule, len(schedule))
	for day, entry := range schedule {
		key := strings.ToLower(day)
		if !weekdayNames[key] {
			return NewValidationError("weeklySchedule", fmt.Sprintf("unknown weekday %q", day))
		}
		if err := validateSlotWindows(entry.Slots); err != nil {
			return err
		}
		normalized[key] = entry
	}
	if _, err := svc.Repo.GetOrCreate(ctx, professionalID); err != nil {
		return err
	}
	return svc.Repo.UpdateWeeklySchedule(ctx, professionalID, normalized)
}

// AddBlockedDate records a blocked date for the professional.
func (svc *DefaultAvailabilityService) AddBlockedDate(ctx context.Context, professionalID string, blocked models.BlockedDate) error {
	if err := validateDate(blocked.Date); err != nil {
		return err
	}
	if _, err := svc.Repo.GetOrCreate(ctx, professionalID); err != nil {
		return err
	}
	return svc.Repo.AddBlockedDate(ctx, professionalID, blocked)
}

// RemoveBlockedDate clears a blocked date.
func (svc *DefaultAvailabilityService) RemoveBlockedDate(ctx context.Context, professionalID, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	return svc.Repo.RemoveBlockedDate(ctx, professionalID, date)
}

// SetSpecialDate adds a one-off schedule override, replacing any existing
// override for the same date.
func (svc *DefaultAvailabilityService) SetSpecialDate(ctx context.Context, professionalID string, special models.SpecialDate) error {
	if err := validateDate(special.Date); err != nil {
		return err
	}
	if err := validateSlotWindows(special.Slots); err != nil {
		return err
	}
	if _, err := svc.Repo.GetOrCreate(ctx, professionalID); err != nil {
		return err
	}
	return svc.Repo.SetSpecialDate(ctx, professionalID, special)
}

// RemoveSpecialDate clears a schedule override.
func (svc *DefaultAvailabilityService) RemoveSpecialDate(ctx context.Context, professionalID, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	return svc.Repo.RemoveSpecialDate(ctx, professionalID, date)
}

// UpdateSettings validates and applies new buffer/notice/window settings.
func (svc *DefaultAvailabilityService) UpdateSettings(ctx context.Context, professionalID string, settings models.AvailabilitySettings) error {
	if settings.BufferTime < 0 {
		return NewValidationError("bufferTime", "must not be negative")
	}
	if settings.AdvanceBookingDays <= 0 {
		return NewValidationError("advanceBookingDays", "must be positive")
	}
	if settings.MinBookingNotice < 0 {
		return NewValidationError("minBookingNotice", "must not be negative")
	}
	if settings.Timezone == "" {
		settings.Timezone = models.DefaultTimezone
	}
	if _, err := time.LoadLocation(settings.Timezone); err != nil {
		return NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", settings.Timezone))
	}
	if _, err := svc.Repo.GetOrCreate(ctx, professionalID); err != nil {
		return err
	}
	return svc.Repo.UpdateSettings(ctx, professionalID, settings)
}

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return NewValidationError("date", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date))
	}
	return nil
}

func validateSlotWindows(slots []models.SlotWindow) error {
	for _, s := range slots {
		d, err := utils.Duration(s.Start, s.End)
		if err != nil {
			return NewValidationError("slots", err.Error())
		}
		if d <= 0 {
			return NewValidationError("slots", fmt.Sprintf("slot %s-%s must end after it starts", s.Start, s.End))
		}
	}
	return nil
}
