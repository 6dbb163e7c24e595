package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market/config"
	"market/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishOfferEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.DiscardHandler))

	event := &service.OfferEvent{
		RequestID:  "req-1",
		Type:       service.OfferEventStatusChanged,
		OfferID:    "offer-1",
		ProducerID: "producer-1",
		WeekNumber: 35,
		Status:     "approved",
		OccurredAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishOfferEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "offer-1", received.Message.Attributes["offer_id"])
	assert.Equal(t, "offer.status_changed", received.Message.Attributes["type"])
	assert.NotEmpty(t, received.Message.MessageID)

	var decoded service.OfferEvent
	require.NoError(t, json.Unmarshal(received.Message.Data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishOfferEvent(context.Background(), &service.OfferEvent{Type: service.OfferEventDeleted})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name        string
		cfg         *config.PubSubConfig
		wantErr     string
		wantDiscard bool
	}{
		{name: "not configured", cfg: nil, wantDiscard: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantDiscard: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID is required"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: logger,
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			_, isDiscard := publisher.(*discardPublisher)
			assert.Equal(t, tt.wantDiscard, isDiscard)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestEncodeEvent(t *testing.T) {
	data, attributes, err := encodeEvent(&service.OfferEvent{
		Type:       service.OfferEventSubmitted,
		OfferID:    "offer-2",
		ProducerID: "producer-2",
		Status:     "submitted",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"type":        "offer.submitted",
		"offer_id":    "offer-2",
		"producer_id": "producer-2",
		"status":      "submitted",
	}, attributes)
	assert.Contains(t, string(data), `"offer_id":"offer-2"`)
	assert.NotContains(t, string(data), "request_id")
}
