package pubsub

import (
	"encoding/json"

	"market/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeEvent returns the message payload and attributes for event. The attributes let
// subscriptions filter on type and status without decoding the payload.
func encodeEvent(event *service.OfferEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode offer event")
	}

	attributes := map[string]string{
		"type":        event.Type,
		"offer_id":    event.OfferID,
		"producer_id": event.ProducerID,
		"status":      event.Status,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
