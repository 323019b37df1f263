package reminder

import (
	"context"
	"fmt"
	"time"

	bookingRepo "lensbook/database/repository/booking"
	"lensbook/models"
	"lensbook/services/notification"
	"lensbook/utils"

	"go.uber.org/zap"
)

const (
	// DefaultHoursAhead is the sweep window when the caller does not specify one.
	DefaultHoursAhead = 24

	dateLayout = "2006-01-02"
)

// Service is the reminder sweep: it finds confirmed bookings starting soon,
// notifies both parties and marks them reminded. The sweep is at-least-once;
// a crash between sending and marking yields a duplicate notification, which
// is tolerated.
type Service struct {
	Bookings bookingRepo.BookingRepository
	Notifier notification.NotificationService
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ProcessReminders sweeps bookings starting within hoursAhead and returns the
// number reminded. A failure on one booking never aborts the rest of the batch.
func (s *Service) ProcessReminders(ctx context.Context, hoursAhead int) (int, error) {
	if hoursAhead <= 0 {
		hoursAhead = DefaultHoursAhead
	}
	logger := utils.GetLogger()
	now := s.now()
	deadline := now.Add(time.Duration(hoursAhead) * time.Hour)

	due, err := s.Bookings.FindDueReminders(ctx, now, hoursAhead)
	if err != nil {
		return 0, fmt.Errorf("reminder sweep query failed: %w", err)
	}

	sent := 0
	for i := range due {
		b := &due[i]

		start, err := bookingStart(b)
		if err != nil {
			logger.Warn("reminder sweep: skipping booking with bad start time",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		// The date-window query is coarse; drop bookings whose exact start
		// falls outside [now, deadline].
		if start.Before(now) || start.After(deadline) {
			continue
		}

		s.notifyBoth(ctx, b, start)

		if err := s.Bookings.MarkReminderSent(ctx, b.ID); err != nil {
			logger.Error("reminder sweep: failed to mark reminder sent",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		sent++
	}

	logger.Info("reminder sweep finished",
		zap.Int("due", len(due)), zap.Int("sent", sent), zap.Int("hoursAhead", hoursAhead))
	return sent, nil
}

func (s *Service) notifyBoth(ctx context.Context, b *models.Booking, start time.Time) {
	logger := utils.GetLogger()
	n := models.Notification{
		Type:  "booking_reminder",
		Title: "Upcoming booking",
		Body:  fmt.Sprintf("Reminder: %s session on %s at %s.", b.EventType, start.Format("2 January"), b.StartTime),
		Data: map[string]string{
			"bookingId": b.ID,
			"date":      b.BookingDate,
			"startTime": b.StartTime,
		},
		Channels: []string{models.ChannelPush},
	}

	if err := s.Notifier.SendUserNotification(ctx, b.ClientID, n); err != nil {
		logger.Warn("reminder sweep: client notification failed",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
	if b.ProfessionalID != "" {
		if err := s.Notifier.SendProfessionalNotification(ctx, b.ProfessionalID, n); err != nil {
			logger.Warn("reminder sweep: professional notification failed",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
}

func bookingStart(b *models.Booking) (time.Time, error) {
	day, err := time.Parse(dateLayout, b.BookingDate)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := utils.TimeToMinutes(b.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(minutes) * time.Minute), nil
}
