package service

import "context"

// PushService delivers push notifications to topic subscribers.
type PushService interface {
	// SendToTopic sends a notification to every device subscribed to topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
