package availability

import (
	"context"
	"time"

	"lensbook/models"
)

// fakeAvailabilityRepo keeps one availability document in memory.
type fakeAvailabilityRepo struct {
	doc *models.Availability
}

func newFakeAvailabilityRepo(professionalID string) *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{doc: models.NewAvailability(professionalID, time.Now())}
}

func (f *fakeAvailabilityRepo) GetOrCreate(ctx context.Context, professionalID string) (*models.Availability, error) {
	if f.doc == nil {
		f.doc = models.NewAvailability(professionalID, time.Now())
	}
	return f.doc, nil
}

func (f *fakeAvailabilityRepo) UpdateWeeklySchedule(ctx context.Context, professionalID string, schedule map[string]models.DaySchedule) error {
	f.doc.WeeklySchedule = schedule
	return nil
}

func (f *fakeAvailabilityRepo) AddBlockedDate(ctx context.Context, professionalID string, blocked models.BlockedDate) error {
	f.doc.BlockedDates = append(f.doc.BlockedDates, blocked)
	return nil
}

func (f *fakeAvailabilityRepo) RemoveBlockedDate(ctx context.Context, professionalID, date string) error {
	kept := f.doc.BlockedDates[:0]
	for _, b := range f.doc.BlockedDates {
		if b.Date != date {
			kept = append(kept, b)
		}
	}
	f.doc.BlockedDates = kept
	return nil
}

func (f *fakeAvailabilityRepo) SetSpecialDate(ctx context.Context, professionalID string, special models.SpecialDate) error {
	_ = f.RemoveSpecialDate(ctx, professionalID, special.Date)
	f.doc.SpecialDates = append(f.doc.SpecialDates, special)
	return nil
}

func (f *fakeAvailabilityRepo) RemoveSpecialDate(ctx context.Context, professionalID, date string) error {
	kept := f.doc.SpecialDates[:0]
	for _, s := range f.doc.SpecialDates {
		if s.Date != date {
			kept = append(kept, s)
		}
	}
	f.doc.SpecialDates = kept
	return nil
}

func (f *fakeAvailabilityRepo) UpdateSettings(ctx context.Context, professionalID string, settings models.AvailabilitySettings) error {
	f.doc.BufferTime = settings.BufferTime
	f.doc.AdvanceBookingDays = settings.AdvanceBookingDays
	f.doc.MinBookingNotice = settings.MinBookingNotice
	f.doc.Timezone = settings.Timezone
	return nil
}

// fakeBookingRepo serves a fixed set of bookings.
type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *models.Booking) error { return nil }
func (f *fakeBookingRepo) SoftDelete(ctx context.Context, bookingID string) error    { return nil }

func (f *fakeBookingRepo) FindActiveByProfessionalAndDate(ctx context.Context, professionalID, date, excludeBookingID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProfessionalID == professionalID && b.BookingDate == date &&
			b.Status.IsActive() && !b.IsDeleted && b.ID != excludeBookingID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByDateRange(ctx context.Context, professionalID, from, to string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProfessionalID == professionalID && b.BookingDate >= from && b.BookingDate <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByDay(ctx context.Context, professionalID, from, to string) (map[string]int, error) {
	counts := map[string]int{}
	for _, b := range f.bookings {
		if b.ProfessionalID == professionalID && b.BookingDate >= from && b.BookingDate <= to &&
			b.Status.IsActive() && !b.IsDeleted {
			counts[b.BookingDate]++
		}
	}
	return counts, nil
}

func (f *fakeBookingRepo) FindDueReminders(ctx context.Context, now time.Time, hoursAhead int) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) MarkReminderSent(ctx context.Context, bookingID string) error { return nil }

func (f *fakeBookingRepo) FindByClient(ctx context.Context, clientID string, status models.Status) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindByProfessional(ctx context.Context, professionalID string, status models.Status) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindUnassigned(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}
