// Package notification delivers user-facing notices and push messages.
package notification

import (
	"context"
	"log/slog"
	"time"

	"market/internal/domain/service"
)

// logNotifier writes every notice to the structured log.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a Notifier that logs notices. Error notices are logged at error level.
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, message string, severity service.Severity, duration time.Duration) {
	level := slog.LevelInfo
	switch severity {
	case service.SeverityError:
		level = slog.LevelError
	case service.SeverityWarning:
		level = slog.LevelWarn
	}

	n.logger.LogAttrs(ctx, level, "Notification",
		slog.String("message", message),
		slog.String("severity", string(severity)),
		slog.Duration("duration", duration),
	)
}

// pushNotifier forwards notices to a push topic.
type pushNotifier struct {
	push   service.PushService
	topic  string
	logger *slog.Logger
}

// NewPushNotifier returns a Notifier that sends every notice to topic.
func NewPushNotifier(push service.PushService, topic string, logger *slog.Logger) service.Notifier {
	return &pushNotifier{push: push, topic: topic, logger: logger}
}

func (n *pushNotifier) Notify(ctx context.Context, message string, severity service.Severity, duration time.Duration) {
	data := map[string]string{
		"severity": string(severity),
		"duration": duration.String(),
	}

	if err := n.push.SendToTopic(ctx, n.topic, string(severity), message, data); err != nil {
		n.logger.Warn("Failed to push notification",
			slog.String("topic", n.topic),
			slog.Any("error", err),
		)
	}
}

// fanoutNotifier delivers each notice to every sink in order.
type fanoutNotifier []service.Notifier

// NewFanout combines notifiers. Nil entries are dropped.
func NewFanout(notifiers ...service.Notifier) service.Notifier {
	sinks := make(fanoutNotifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			sinks = append(sinks, n)
		}
	}

	return sinks
}

func (f fanoutNotifier) Notify(ctx context.Context, message string, severity service.Severity, duration time.Duration) {
	for _, n := range f {
		n.Notify(ctx, message, severity, duration)
	}
}
