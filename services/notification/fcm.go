package notification

import (
	"context"
	"fmt"

	professionalRepo "lensbook/database/repository/professional"
	userRepo "lensbook/database/repository/user"
	"lensbook/models"
	"lensbook/utils"

	"firebase.google.com/go/v4/messaging"
)

// DefaultNotificationService is the production implementation, delivering
// pushes through FCM.
type DefaultNotificationService struct {
	Users         userRepo.UserRepository
	Professionals professionalRepo.ProfessionalRepository
}

func NewDefaultNotificationService(
	users userRepo.UserRepository,
	professionals professionalRepo.ProfessionalRepository,
) (*DefaultNotificationService, error) {
	if users == nil || professionals == nil {
		return nil, fmt.Errorf("notification service initialization error: user or professional repository is nil")
	}
	return &DefaultNotificationService{
		Users:         users,
		Professionals: professionals,
	}, nil
}

// SendUserNotification looks up a user's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserNotification(ctx context.Context, userID string, n models.Notification) error {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserNotification: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendUserNotification: user %s has no FCM token", userID)
	}
	return s.send(ctx, u.FCMToken, n)
}

// SendProfessionalNotification looks up a professional's FCM token and sends a push.
func (s *DefaultNotificationService) SendProfessionalNotification(ctx context.Context, professionalID string, n models.Notification) error {
	p, err := s.Professionals.FindByID(ctx, professionalID)
	if err != nil {
		return fmt.Errorf("SendProfessionalNotification: could not find professional %s: %w", professionalID, err)
	}
	if p.FCMToken == "" {
		return fmt.Errorf("SendProfessionalNotification: professional %s has no FCM token", professionalID)
	}
	return s.send(ctx, p.FCMToken, n)
}

func (s *DefaultNotificationService) send(ctx context.Context, token string, n models.Notification) error {
	data := n.Data
	if data == nil {
		data = map[string]string{}
	}
	data["type"] = n.Type

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
