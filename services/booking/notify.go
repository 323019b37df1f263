package booking

import (
	"context"
	"time"

	"lensbook/models"
	"lensbook/utils"

	"go.uber.org/zap"
)

// formatBookingDate renders "2006-01-02" as a friendly date for notification
// bodies, falling back to the raw string on parse failure.
func formatBookingDate(date string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("2 January 2006")
}

// Notification delivery is fire-and-forget: a failed push never fails the
// booking operation that triggered it.
func (se *DefaultBookingEngine) notifyClient(ctx context.Context, b *models.Booking, n models.Notification) {
	if se.Notifier == nil {
		return
	}
	if n.Data == nil {
		n.Data = map[string]string{}
	}
	n.Data["bookingId"] = b.ID
	n.Data["date"] = b.BookingDate
	n.Channels = []string{models.ChannelPush}
	if err := se.Notifier.SendUserNotification(ctx, b.ClientID, n); err != nil {
		utils.GetLogger().Warn("failed to notify client",
			zap.String("clientID", b.ClientID),
			zap.String("bookingID", b.ID),
			zap.Error(err))
	}
}

func (se *DefaultBookingEngine) notifyProfessional(ctx context.Context, b *models.Booking, n models.Notification) {
	if se.Notifier == nil || b.ProfessionalID == "" {
		return
	}
	if n.Data == nil {
		n.Data = map[string]string{}
	}
	n.Data["bookingId"] = b.ID
	n.Data["date"] = b.BookingDate
	n.Channels = []string{models.ChannelPush}
	if err := se.Notifier.SendProfessionalNotification(ctx, b.ProfessionalID, n); err != nil {
		utils.GetLogger().Warn("failed to notify professional",
			zap.String("professionalID", b.ProfessionalID),
			zap.String("bookingID", b.ID),
			zap.Error(err))
	}
}
