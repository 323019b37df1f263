package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"lensbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newEngine(bookings *memBookingRepo, pros *memProfessionalRepo, notifier *recordingNotifier) *DefaultBookingEngine {
	return &DefaultBookingEngine{
		Bookings:      bookings,
		Professionals: pros,
		Notifier:      notifier,
		Now:           func() time.Time { return testNow },
	}
}

func approvedPro(id string) *models.Professional {
	return &models.Professional{ID: id, Name: "Asha", Status: models.ProfessionalStatusApproved}
}

func validInput(professionalID string) models.BookingInput {
	return models.BookingInput{
		ProfessionalID: professionalID,
		BookingDate:    "2026-03-10",
		StartTime:      "10:00",
		Duration:       120,
		EventType:      "wedding",
		Location:       "Plaza Hall",
		Pricing:        models.Pricing{BaseAmount: 200, TravelFee: 25},
	}
}

func TestCreateBooking(t *testing.T) {
	bookings := newMemBookingRepo()
	notifier := &recordingNotifier{}
	engine := newEngine(bookings, newMemProfessionalRepo(approvedPro("pro-1")), notifier)

	b, err := engine.CreateBooking(context.Background(), "client-1", validInput("pro-1"))
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, "10:00", b.StartTime)
	assert.Equal(t, "12:00", b.EndTime)
	assert.Equal(t, 225.0, b.Pricing.TotalAmount)
	assert.Equal(t, testNow, b.CreatedAt)

	stored, err := bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	assert.Equal(t, []string{"booking_requested"}, notifier.types())
}

func TestCreateBookingUnassigned(t *testing.T) {
	notifier := &recordingNotifier{}
	engine := newEngine(newMemBookingRepo(), newMemProfessionalRepo(), notifier)

	b, err := engine.CreateBooking(context.Background(), "client-1", validInput(""))
	require.NoError(t, err)
	assert.Empty(t, b.ProfessionalID)
	assert.Equal(t, models.StatusPending, b.Status)
	// nobody to notify yet
	assert.Empty(t, notifier.types())
}

func TestCreateBookingRejectsUnapprovedProfessional(t *testing.T) {
	pro := &models.Professional{ID: "pro-1", Status: models.ProfessionalStatusPending}
	engine := newEngine(newMemBookingRepo(), newMemProfessionalRepo(pro), &recordingNotifier{})

	_, err := engine.CreateBooking(context.Background(), "client-1", validInput("pro-1"))
	assert.ErrorIs(t, err, ErrProfessionalNotApproved)
}

func TestCreateBookingValidation(t *testing.T) {
	engine := newEngine(newMemBookingRepo(), newMemProfessionalRepo(), &recordingNotifier{})
	ctx := context.Background()
	var valErr *ValidationError

	_, err := engine.CreateBooking(ctx, "", validInput(""))
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "clientId", valErr.Field)

	input := validInput("")
	input.BookingDate = "10/03/2026"
	_, err = engine.CreateBooking(ctx, "client-1", input)
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "bookingDate", valErr.Field)

	input = validInput("")
	input.StartTime = "25:00"
	_, err = engine.CreateBooking(ctx, "client-1", input)
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "startTime", valErr.Field)

	input = validInput("")
	input.Duration = 0
	_, err = engine.CreateBooking(ctx, "client-1", input)
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "duration", valErr.Field)

	// 23:00 + 120min would cross midnight
	input = validInput("")
	input.StartTime = "23:00"
	_, err = engine.CreateBooking(ctx, "client-1", input)
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "duration", valErr.Field)
}

func TestCreateBookingConflict(t *testing.T) {
	engine := newEngine(newMemBookingRepo(), newMemProfessionalRepo(approvedPro("pro-1")), &recordingNotifier{})
	ctx := context.Background()

	_, err := engine.CreateBooking(ctx, "client-1", validInput("pro-1"))
	require.NoError(t, err)

	// 11:00-13:00 overlaps the existing 10:00-12:00
	input := validInput("pro-1")
	input.StartTime = "11:00"
	_, err = engine.CreateBooking(ctx, "client-2", input)
	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, "pro-1", slotErr.ProfessionalID)

	// back-to-back is fine: 12:00-14:00 starts exactly at the existing end
	input = validInput("pro-1")
	input.StartTime = "12:00"
	_, err = engine.CreateBooking(ctx, "client-2", input)
	require.NoError(t, err)

	// same window on another date is fine
	input = validInput("pro-1")
	input.BookingDate = "2026-03-11"
	_, err = engine.CreateBooking(ctx, "client-2", input)
	require.NoError(t, err)

	// another professional is unaffected
	engine.Professionals.(*memProfessionalRepo).pros["pro-2"] = approvedPro("pro-2")
	_, err = engine.CreateBooking(ctx, "client-2", validInput("pro-2"))
	require.NoError(t, err)
}

func TestCreateBookingIgnoresInactiveConflicts(t *testing.T) {
	cancelled := &models.Booking{
		ID:             "old",
		ClientID:       "client-0",
		ProfessionalID: "pro-1",
		BookingDate:    "2026-03-10",
		StartTime:      "10:00",
		EndTime:        "12:00",
		Status:         models.StatusCancelled,
	}
	engine := newEngine(newMemBookingRepo(cancelled), newMemProfessionalRepo(approvedPro("pro-1")), &recordingNotifier{})

	_, err := engine.CreateBooking(context.Background(), "client-1", validInput("pro-1"))
	require.NoError(t, err)
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	engine := newEngine(newMemBookingRepo(), newMemProfessionalRepo(approvedPro("pro-1")), &recordingNotifier{})

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.CreateBooking(context.Background(), "client-1", validInput("pro-1"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			var slotErr *SlotUnavailableError
			require.ErrorAs(t, err, &slotErr)
		}
	}
	// the per-schedule lock lets exactly one create through
	assert.Equal(t, 1, succeeded)
}

func TestComputeTotalAmount(t *testing.T) {
	p := models.Pricing{
		BaseAmount: 100,
		AdditionalCharges: []models.PriceEntry{
			{Label: "second shooter", Amount: 50},
			{Label: "drone", Amount: 30},
		},
		Discounts: []models.PriceEntry{{Label: "early bird", Amount: 20}},
		TravelFee: 10,
	}
	assert.Equal(t, 170.0, ComputeTotalAmount(p))

	// a discount larger than everything else floors at zero
	p.Discounts = []models.PriceEntry{{Label: "voucher", Amount: 500}}
	assert.Equal(t, 0.0, ComputeTotalAmount(p))

	assert.Equal(t, 0.0, ComputeTotalAmount(models.Pricing{}))
}
