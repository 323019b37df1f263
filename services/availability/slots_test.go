package availability

import (
	"context"
	"testing"
	"time"

	"lensbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const proID = "pro-1"

// fixedNow is a Monday morning, far enough from the test dates that notice
// and horizon checks stay out of the way unless a test tightens them.
var fixedNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newSlotService(repo *fakeAvailabilityRepo, bookings *fakeBookingRepo) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Repo:     repo,
		Bookings: bookings,
		Now:      func() time.Time { return fixedNow },
	}
}

func slotStarts(result *models.AvailableSlotsResult) []string {
	starts := make([]string, 0, len(result.Slots))
	for _, s := range result.Slots {
		starts = append(starts, s.StartTime)
	}
	return starts
}

func TestGetAvailableSlotsDefaultSchedule(t *testing.T) {
	svc := newSlotService(newFakeAvailabilityRepo(proID), &fakeBookingRepo{})

	// 2026-03-10 is a Tuesday: 09:00-12:00 and 14:00-18:00.
	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-03-10", 60)
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, []string{
		"09:00", "09:30", "10:00", "10:30", "11:00",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
	}, slotStarts(res))

	for _, s := range res.Slots {
		assert.Equal(t, 60, s.Duration)
	}
}

func TestGetAvailableSlotsBufferAroundBooking(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []models.Booking{{
		ID:             "b1",
		ProfessionalID: proID,
		BookingDate:    "2026-03-10",
		StartTime:      "10:00",
		EndTime:        "12:00",
		Status:         models.StatusConfirmed,
	}}}
	svc := newSlotService(newFakeAvailabilityRepo(proID), bookings)

	// Default buffer is 30 minutes: no start may fall in [09:30, 12:30), and
	// nothing may overlap 10:00-12:00 outright. 09:00-10:00 ends exactly at
	// the booking start and is still offered.
	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-03-10", 60)
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, []string{
		"09:00",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
	}, slotStarts(res))
}

func TestGetAvailableSlotsLongDuration(t *testing.T) {
	svc := newSlotService(newFakeAvailabilityRepo(proID), &fakeBookingRepo{})

	// A 240-minute session only fits in the afternoon slot, starting at 14:00.
	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-03-10", 240)
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, []string{"14:00"}, slotStarts(res))

	// 300 minutes fits nowhere.
	res, err = svc.GetAvailableSlots(context.Background(), proID, "2026-03-10", 300)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Empty(t, res.Slots)
}

func TestGetAvailableSlotsCancelledBookingIgnored(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []models.Booking{{
		ID:             "b1",
		ProfessionalID: proID,
		BookingDate:    "2026-03-10",
		StartTime:      "10:00",
		EndTime:        "12:00",
		Status:         models.StatusCancelled,
	}}}
	svc := newSlotService(newFakeAvailabilityRepo(proID), bookings)

	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-03-10", 60)
	require.NoError(t, err)
	assert.Len(t, res.Slots, 12)
}

func TestGetAvailableSlotsBlockedDate(t *testing.T) {
	repo := newFakeAvailabilityRepo(proID)
	repo.doc.BlockedDates = []models.BlockedDate{{Date: "2026-03-10", Reason: "travel"}}
	svc := newSlotService(repo, &fakeBookingRepo{})

	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-03-10", 60)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Empty(t, res.Slots)
}

func TestGetAvailableSlotsSpecialDateOverridesWeekly(t *testing.T) {
	repo := newFakeAvailabilityRepo(proID)
	repo.doc.SpecialDates = []models.SpecialDate{{
		Date:  "2026-03-10",
		Slots: []models.SlotWindow{{Start: "16:00", End: "20:00"}},
	}}
	svc := newSlotService(repo, &fakeBookingRepo{})

	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-03-10", 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00"}, slotStarts(res))
}

func TestGetAvailableSlotsSpecialDateEmptySlots(t *testing.T) {
	repo := newFakeAvailabilityRepo(proID)
	repo.doc.SpecialDates = []models.SpecialDate{{Date: "2026-03-10", Slots: nil}}
	svc := newSlotService(repo, &fakeBookingRepo{})

	// A special date with no slots makes the day unavailable.
	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-03-10", 60)
	require.NoError(t, err)
	assert.False(t, res.Available)
}

func TestGetAvailableSlotsUnavailableWeekday(t *testing.T) {
	svc := newSlotService(newFakeAvailabilityRepo(proID), &fakeBookingRepo{})

	// 2026-03-08 is a Sunday.
	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-03-08", 60)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Empty(t, res.Slots)
}

func TestGetAvailableSlotsTooFarInAdvance(t *testing.T) {
	svc := newSlotService(newFakeAvailabilityRepo(proID), &fakeBookingRepo{})

	// Default horizon is 60 days from fixedNow (2026-03-02).
	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-06-10", 60)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, ReasonTooFarInAdvance, res.Reason)
}

func TestGetAvailableSlotsInsufficientNotice(t *testing.T) {
	svc := newSlotService(newFakeAvailabilityRepo(proID), &fakeBookingRepo{})

	// Default notice is 24h; the whole of today ends before the cutoff.
	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-03-02", 60)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, ReasonInsufficientNotice, res.Reason)
}

func TestGetAvailableSlotsNoticeTrimsSameDay(t *testing.T) {
	repo := newFakeAvailabilityRepo(proID)
	repo.doc.MinBookingNotice = 2
	svc := newSlotService(repo, &fakeBookingRepo{})

	// fixedNow is Monday 2026-03-02 10:00; with 2h notice only starts from
	// 12:00 qualify, so the morning slot is gone entirely.
	res, err := svc.GetAvailableSlots(context.Background(), proID, "2026-03-02", 60)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
	}, slotStarts(res))
}

func TestGetAvailableSlotsInvalidInput(t *testing.T) {
	svc := newSlotService(newFakeAvailabilityRepo(proID), &fakeBookingRepo{})

	_, err := svc.GetAvailableSlots(context.Background(), proID, "10-03-2026", 60)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "date", valErr.Field)

	_, err = svc.GetAvailableSlots(context.Background(), proID, "2026-03-10", 0)
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "duration", valErr.Field)
}

func TestConflictsWithBooked(t *testing.T) {
	busy := []interval{{start: 600, end: 720}} // 10:00-12:00

	tests := []struct {
		name       string
		start, end int
		buffer     int
		want       bool
	}{
		{"overlap", 660, 780, 0, true},
		{"exact match", 600, 720, 0, true},
		{"ends at booking start", 540, 600, 0, false},
		{"starts at booking end", 720, 780, 0, false},
		{"inside buffer before", 570, 600, 30, true},
		{"inside buffer after", 735, 795, 30, true},
		{"clear of buffer", 750, 810, 30, false},
		{"ends at buffer start", 510, 570, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conflictsWithBooked(tt.start, tt.end, busy, tt.buffer))
		})
	}
}
