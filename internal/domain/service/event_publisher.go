package service

import (
	"context"
	"time"
)

// Offer event types
const (
	OfferEventSubmitted     = "offer.submitted"
	OfferEventStatusChanged = "offer.status_changed"
	OfferEventDeleted       = "offer.deleted"
)

// OfferEvent describes a change in an offer's lifecycle.
type OfferEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ActorID    string    `json:"actor_id,omitempty"`   // User whose request caused the event
	Type       string    `json:"type"`
	OfferID    string    `json:"offer_id"`
	ProducerID string    `json:"producer_id"`
	WeekNumber int       `json:"week_number"`
	Status     string    `json:"status"`
	Feedback   string    `json:"feedback,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOfferEvent publishes an offer lifecycle event
	PublishOfferEvent(ctx context.Context, event *OfferEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
