package notification

import (
	"context"

	"lensbook/models"
)

// NotificationService delivers notifications to clients and professionals.
// The booking engine treats delivery as fire-and-forget: failures are logged
// by callers, never retried here.
type NotificationService interface {
	SendUserNotification(ctx context.Context, userID string, n models.Notification) error
	SendProfessionalNotification(ctx context.Context, professionalID string, n models.Notification) error
}
