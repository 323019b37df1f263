package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "lensbook/database/repository/booking"
	professionalRepo "lensbook/database/repository/professional"
	"lensbook/models"
)

// memBookingRepo is an in-memory BookingRepository for engine tests.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newMemBookingRepo(seed ...*models.Booking) *memBookingRepo {
	repo := &memBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range seed {
		copied := *b
		repo.bookings[b.ID] = &copied
	}
	return repo
}

func (r *memBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok || b.IsDeleted {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[booking.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *memBookingRepo) SoftDelete(ctx context.Context, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.IsDeleted = true
	return nil
}

func (r *memBookingRepo) FindActiveByProfessionalAndDate(ctx context.Context, professionalID, date, excludeBookingID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProfessionalID == professionalID && b.BookingDate == date &&
			b.Status.IsActive() && !b.IsDeleted && b.ID != excludeBookingID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) FindByDateRange(ctx context.Context, professionalID, from, to string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProfessionalID == professionalID && b.BookingDate >= from && b.BookingDate <= to {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) CountByDay(ctx context.Context, professionalID, from, to string) (map[string]int, error) {
	return map[string]int{}, nil
}

func (r *memBookingRepo) FindDueReminders(ctx context.Context, now time.Time, hoursAhead int) ([]models.Booking, error) {
	return nil, nil
}

func (r *memBookingRepo) MarkReminderSent(ctx context.Context, bookingID string) error {
	return nil
}

func (r *memBookingRepo) FindByClient(ctx context.Context, clientID string, status models.Status) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID && !b.IsDeleted && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) FindByProfessional(ctx context.Context, professionalID string, status models.Status) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProfessionalID == professionalID && !b.IsDeleted && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) FindUnassigned(ctx context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProfessionalID == "" && b.Status == models.StatusPending && !b.IsDeleted {
			out = append(out, *b)
		}
	}
	return out, nil
}

// memProfessionalRepo serves a fixed set of professionals and counts
// IncrementBookingCount calls.
type memProfessionalRepo struct {
	pros       map[string]*models.Professional
	increments map[string]int
}

func newMemProfessionalRepo(pros ...*models.Professional) *memProfessionalRepo {
	repo := &memProfessionalRepo{
		pros:       map[string]*models.Professional{},
		increments: map[string]int{},
	}
	for _, p := range pros {
		repo.pros[p.ID] = p
	}
	return repo
}

func (r *memProfessionalRepo) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	p, ok := r.pros[professionalID]
	if !ok {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return p, nil
}

func (r *memProfessionalRepo) FindApproved(ctx context.Context) ([]models.Professional, error) {
	var out []models.Professional
	for _, p := range r.pros {
		if p.IsApproved() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProfessionalRepo) IncrementBookingCount(ctx context.Context, professionalID string) error {
	r.increments[professionalID]++
	return nil
}

// recordingNotifier captures every notification sent.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

type sentNotification struct {
	recipient string // "user:<id>" or "pro:<id>"
	n         models.Notification
}

func (r *recordingNotifier) SendUserNotification(ctx context.Context, userID string, n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentNotification{recipient: "user:" + userID, n: n})
	return nil
}

func (r *recordingNotifier) SendProfessionalNotification(ctx context.Context, professionalID string, n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentNotification{recipient: "pro:" + professionalID, n: n})
	return nil
}

func (r *recordingNotifier) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sent))
	for _, s := range r.sent {
		out = append(out, s.n.Type)
	}
	return out
}
