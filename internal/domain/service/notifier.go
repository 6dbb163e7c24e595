package service

import (
	"context"
	"time"
)

// Severity classifies a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Default display durations
const (
	DurationShort = 3 * time.Second
	DurationLong  = 5 * time.Second
)

// Notifier is the sink for user-facing outcome messages of mutating operations.
type Notifier interface {
	Notify(ctx context.Context, message string, severity Severity, duration time.Duration)
}
