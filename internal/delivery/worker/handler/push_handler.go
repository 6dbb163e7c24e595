// Package handler holds the worker's Pub/Sub push handlers.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	"market/internal/domain/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PubSubMessage is the body of a Pub/Sub push request. Data arrives base64 encoded.
type PubSubMessage struct {
	Message struct {
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns offer lifecycle events into push notifications.
type PushHandler struct {
	adminTopic string
	logger     *slog.Logger
	profileUC  usecase.ProfileUsecase
	push       service.PushService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	ProfileUC usecase.ProfileUsecase
	Push      service.PushService
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		adminTopic: params.Config.Worker.AdminTopic,
		logger:     params.Logger,
		profileUC:  params.ProfileUC,
		push:       params.Push,
	}
}

// ProducerTopic is the FCM topic a producer's devices subscribe to.
func ProducerTopic(producerID string) string {
	return "producer-" + producerID
}

// HandlePush answers 400 to undecodable messages and 503 when the notification could not be sent,
// which makes Pub/Sub redeliver. Everything else is acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OfferEvent
	if err := json.Unmarshal(pushMsg.Message.Data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse offer event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing offer event",
		slog.String("type", event.Type),
		slog.String("offer_id", event.OfferID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process offer event",
			slog.String("offer_id", event.OfferID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound request.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OfferEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.OfferEvent) error {
	if event.OfferID == "" || event.ProducerID == "" {
		return errors.New("offer event without offer or producer id")
	}

	topic, title, body, ok := h.prepareNotification(ctx, event)
	if !ok {
		deliverycontext.LoggerFrom(ctx, h.logger).Info("[Worker] Nothing to notify",
			slog.String("type", event.Type),
		)

		return nil
	}

	data := map[string]string{
		"type":     event.Type,
		"offer_id": event.OfferID,
		"status":   event.Status,
		"week":     fmt.Sprint(event.WeekNumber),
	}

	if err := h.push.SendToTopic(ctx, topic, title, body, data); err != nil {
		return newRetryableError(errors.Wrapf(err, "send to topic %s", topic))
	}

	return nil
}

// prepareNotification picks the audience and text for an event. Submissions go to admins,
// review decisions go to the producer; deletions notify nobody.
func (h *PushHandler) prepareNotification(ctx context.Context, event *service.OfferEvent) (topic, title, body string, ok bool) {
	switch event.Type {
	case service.OfferEventSubmitted:
		return h.adminTopic,
			fmt.Sprintf("New offer for week %d", event.WeekNumber),
			h.producerName(ctx, event.ProducerID) + " submitted an offer",
			true
	case service.OfferEventStatusChanged:
		statusTitle, known := statusTitles[entity.OfferStatus(event.Status)]
		if !known {
			return "", "", "", false
		}

		message := fmt.Sprintf("Your offer for week %d was reviewed", event.WeekNumber)
		if feedback := strings.TrimSpace(event.Feedback); feedback != "" {
			message = feedback
		}

		return ProducerTopic(event.ProducerID), statusTitle, message, true
	default:
		return "", "", "", false
	}
}

//nolint:gochecknoglobals
var statusTitles = map[entity.OfferStatus]string{
	entity.OfferStatusApproved:      "Offer approved",
	entity.OfferStatusRejected:      "Offer rejected",
	entity.OfferStatusNeedsRevision: "Offer needs revision",
}

// producerName falls back to a generic label when the profile cannot be loaded.
func (h *PushHandler) producerName(ctx context.Context, producerID string) string {
	user, err := h.profileUC.GetUserProfile(ctx, producerID)
	if err != nil || user == nil {
		if err != nil {
			deliverycontext.LoggerFrom(ctx, h.logger).Warn("[Worker] Failed to load producer",
				slog.String("producer_id", producerID),
				slog.Any("error", err),
			)
		}

		return "A producer"
	}

	return user.DisplayName()
}
