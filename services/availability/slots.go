package availability

import (
	"context"
	"fmt"
	"time"

	"lensbook/models"
	"lensbook/utils"
)

// GetAvailableSlots computes the bookable windows of the requested duration
// for a professional on a calendar date, honoring the advance-booking window,
// minimum notice, blocked/special dates and buffer time around existing
// bookings.
func (svc *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, professionalID, date string, duration int) (*models.AvailableSlotsResult, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, NewValidationError("date", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date))
	}
	if duration <= 0 {
		return nil, NewValidationError("duration", "must be a positive number of minutes")
	}

	avail, err := svc.Repo.GetOrCreate(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	now := svc.now()

	// Advance-booking window: the date may not lie beyond now + N days.
	horizon := now.AddDate(0, 0, avail.AdvanceBookingDays)
	if day.After(time.Date(horizon.Year(), horizon.Month(), horizon.Day(), 0, 0, 0, 0, horizon.Location())) {
		return &models.AvailableSlotsResult{Available: false, Reason: ReasonTooFarInAdvance}, nil
	}

	// Minimum notice: the whole day is unbookable once its last minute is
	// closer than the required lead time.
	noticeCutoff := now.Add(time.Duration(avail.MinBookingNotice) * time.Hour)
	endOfDay := day.Add(24 * time.Hour)
	if !endOfDay.After(noticeCutoff) {
		return &models.AvailableSlotsResult{Available: false, Reason: ReasonInsufficientNotice}, nil
	}

	baseSlots, blocked := ResolveDaySlots(avail, date)
	if blocked || len(baseSlots) == 0 {
		return &models.AvailableSlotsResult{Available: false, Slots: []models.AvailableSlot{}}, nil
	}

	bookings, err := svc.Bookings.FindActiveByProfessionalAndDate(ctx, professionalID, date, "")
	if err != nil {
		return nil, err
	}

	candidates, err := buildCandidates(baseSlots, bookings, duration, avail.BufferTime, day, noticeCutoff)
	if err != nil {
		return nil, err
	}

	return &models.AvailableSlotsResult{
		Available: len(candidates) > 0,
		Slots:     candidates,
	}, nil
}

// buildCandidates walks each base slot in fixed 30-minute steps and keeps
// every window of the requested duration that fits, clears the notice cutoff,
// and stays buffer-safe with respect to existing bookings.
func buildCandidates(
	baseSlots []models.SlotWindow,
	bookings []models.Booking,
	duration, bufferTime int,
	day time.Time,
	noticeCutoff time.Time,
) ([]models.AvailableSlot, error) {
	busy, err := bookedIntervals(bookings)
	if err != nil {
		return nil, err
	}

	candidates := []models.AvailableSlot{}
	for _, slot := range baseSlots {
		slotStart, err := utils.TimeToMinutes(slot.Start)
		if err != nil {
			return nil, err
		}
		slotEnd, err := utils.TimeToMinutes(slot.End)
		if err != nil {
			return nil, err
		}

		for t := slotStart; t+duration <= slotEnd; t += SlotStepMinutes {
			absStart := day.Add(time.Duration(t) * time.Minute)
			if absStart.Before(noticeCutoff) {
				continue
			}
			if conflictsWithBooked(t, t+duration, busy, bufferTime) {
				continue
			}
			candidates = append(candidates, models.AvailableSlot{
				StartTime: utils.MinutesToTime(t),
				EndTime:   utils.MinutesToTime(t + duration),
				Duration:  duration,
			})
		}
	}
	return candidates, nil
}

type interval struct {
	start, end int // minutes from midnight, half-open
}

func bookedIntervals(bookings []models.Booking) ([]interval, error) {
	var busy []interval
	for _, b := range bookings {
		start, err := utils.TimeToMinutes(b.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := utils.TimeToMinutes(b.EndTime)
		if err != nil {
			return nil, err
		}
		busy = append(busy, interval{start: start, end: end})
	}
	return busy, nil
}

// conflictsWithBooked reports whether the candidate [start, end) collides with
// any booked interval: a hard overlap with the booking itself, or a start that
// falls inside the booking's buffer-expanded window. A candidate that ends
// exactly when a booking starts is allowed; one that starts before the buffer
// after a booking has elapsed is not.
func conflictsWithBooked(start, end int, busy []interval, bufferTime int) bool {
	for _, b := range busy {
		if start < b.end && end > b.start {
			return true
		}
		if start >= b.start-bufferTime && start < b.end+bufferTime {
			return true
		}
	}
	return false
}
