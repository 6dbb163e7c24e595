package notification

import (
	"context"

	"market/internal/domain/service"
	"market/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

type firebasePushService struct {
	client *messaging.Client
}

// NewFirebasePushService creates a push service on top of the app's Cloud Messaging client
func NewFirebasePushService(ctx context.Context, app *firebase.App) (service.PushService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messaging client")
	}

	return &firebasePushService{
		client: client,
	}, nil
}

// SendToTopic sends a push notification to every device subscribed to topic
func (s *firebasePushService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:    data,
		Android: &messaging.AndroidConfig{Priority: "high"},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrapf(err, "send to topic %s", topic)
	}

	return nil
}

// UserTopic is the push topic a user's devices subscribe to.
func UserTopic(userID string) string {
	return "user-" + userID
}
