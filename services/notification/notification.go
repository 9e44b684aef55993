package notification

import (
	"context"
	"fmt"

	credentialRepo "medtrack/database/repository/credential"
	"medtrack/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, email, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation. It resolves
// the stored push token for the user and delivers through FCM.
type DefaultNotificationService struct {
	Repo credentialRepo.CredentialRepository
}

// SendUserPushNotification looks up the user's FCM token and sends a push.
// A user without a token is logged and skipped, not an error: tokens are
// optional and reminders are best-effort.
func (s *DefaultNotificationService) SendUserPushNotification(
	ctx context.Context,
	email, title, body string,
	data map[string]string,
) error {
	cred, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not find user %s: %w", email, err)
	}
	if cred == nil || cred.FCMToken == "" {
		utils.GetLogger().Warn("SendUserPushNotification: no FCM token", zap.String("email", email))
		return nil
	}

	msg := &messaging.Message{
		Token: cred.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendUserPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
