package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"market/internal/domain/entity"
	"market/internal/domain/service"
	mockservice "market/internal/mocks/service"
	mockusecase "market/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixture struct {
	profiles *mockusecase.MockProfileUsecase
	push     *mockservice.MockPushService
	handler  *PushHandler
}

func newPushFixture(t *testing.T) *pushFixture {
	f := &pushFixture{
		profiles: mockusecase.NewMockProfileUsecase(t),
		push:     mockservice.NewMockPushService(t),
	}

	f.handler = &PushHandler{
		adminTopic: "admins",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		profileUC:  f.profiles,
		push:       f.push,
	}

	return f
}

func pushBody(t *testing.T, event *service.OfferEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-7"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func (f *pushFixture) post(t *testing.T, body string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, f.handler.HandlePush(echo.New().NewContext(req, rec)))

	return rec.Code
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("submission notifies admins", func(t *testing.T) {
		f := newPushFixture(t)

		f.profiles.EXPECT().GetUserProfile(mock.Anything, "p1").
			Return(&entity.User{ID: "p1", Name: "Ana", CompanyName: "Finca Ana"}, nil)
		f.push.EXPECT().
			SendToTopic(mock.Anything, "admins", "New offer for week 25", "Finca Ana submitted an offer",
				map[string]string{"type": service.OfferEventSubmitted, "offer_id": "o1", "status": "submitted", "week": "25"}).
			Return(nil)

		code := f.post(t, pushBody(t, &service.OfferEvent{
			Type:       service.OfferEventSubmitted,
			OfferID:    "o1",
			ProducerID: "p1",
			WeekNumber: 25,
			Status:     "submitted",
		}))

		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("review notifies the producer with feedback", func(t *testing.T) {
		f := newPushFixture(t)

		f.push.EXPECT().
			SendToTopic(mock.Anything, "producer-p1", "Offer needs revision", "smaller boxes please", mock.Anything).
			Return(nil)

		code := f.post(t, pushBody(t, &service.OfferEvent{
			Type:       service.OfferEventStatusChanged,
			OfferID:    "o1",
			ProducerID: "p1",
			WeekNumber: 25,
			Status:     string(entity.OfferStatusNeedsRevision),
			Feedback:   " smaller boxes please ",
		}))

		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("producer lookup failure still notifies", func(t *testing.T) {
		f := newPushFixture(t)

		f.profiles.EXPECT().GetUserProfile(mock.Anything, "p1").Return(nil, assert.AnError)
		f.push.EXPECT().
			SendToTopic(mock.Anything, "admins", "New offer for week 25", "A producer submitted an offer", mock.Anything).
			Return(nil)

		code := f.post(t, pushBody(t, &service.OfferEvent{
			Type: service.OfferEventSubmitted, OfferID: "o1", ProducerID: "p1", WeekNumber: 25,
		}))

		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("deletions and resubmissions to submitted are acknowledged silently", func(t *testing.T) {
		f := newPushFixture(t)

		assert.Equal(t, http.StatusOK, f.post(t, pushBody(t, &service.OfferEvent{
			Type: service.OfferEventDeleted, OfferID: "o1", ProducerID: "p1",
		})))
		assert.Equal(t, http.StatusOK, f.post(t, pushBody(t, &service.OfferEvent{
			Type: service.OfferEventStatusChanged, OfferID: "o1", ProducerID: "p1", Status: "submitted",
		})))
	})

	t.Run("push failure asks for redelivery", func(t *testing.T) {
		f := newPushFixture(t)

		f.push.EXPECT().SendToTopic(mock.Anything, "producer-p1", "Offer approved", mock.Anything, mock.Anything).
			Return(assert.AnError)

		code := f.post(t, pushBody(t, &service.OfferEvent{
			Type: service.OfferEventStatusChanged, OfferID: "o1", ProducerID: "p1", Status: "approved",
		}))

		assert.Equal(t, http.StatusServiceUnavailable, code)
	})

	t.Run("malformed messages are rejected", func(t *testing.T) {
		f := newPushFixture(t)

		assert.Equal(t, http.StatusBadRequest, f.post(t, `{"message":{"data":"%%%"}}`))
		assert.Equal(t, http.StatusBadRequest, f.post(t, `{"message":{"data":"bm90IGpzb24="}}`))
	})

	t.Run("events without ids are dropped", func(t *testing.T) {
		f := newPushFixture(t)

		code := f.post(t, pushBody(t, &service.OfferEvent{Type: service.OfferEventSubmitted}))

		assert.Equal(t, http.StatusOK, code)
	})
}
