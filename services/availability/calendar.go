package availability

import (
	"context"
	"fmt"
	"time"

	"lensbook/models"
)

// GetMonthlyAvailability builds the calendar view for one month: per day,
// whether the professional works at all, whether the date is blocked, the
// base slot windows and how many bookings already sit on it.
func (svc *DefaultAvailabilityService) GetMonthlyAvailability(ctx context.Context, professionalID string, year, month int) ([]models.CalendarDay, error) {
	if month < 1 || month > 12 {
		return nil, NewValidationError("month", fmt.Sprintf("%d is not a valid month", month))
	}
	if year < 1 {
		return nil, NewValidationError("year", fmt.Sprintf("%d is not a valid year", year))
	}

	avail, err := svc.Repo.GetOrCreate(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	counts, err := svc.Bookings.CountByDay(ctx, professionalID,
		first.Format(dateLayout), last.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	days := make([]models.CalendarDay, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		slots, blocked := ResolveDaySlots(avail, date)
		days = append(days, models.CalendarDay{
			Date:          date,
			IsAvailable:   !blocked && len(slots) > 0,
			IsBlocked:     blocked,
			BookingsCount: counts[date],
			Slots:         slots,
		})
	}
	return days, nil
}
