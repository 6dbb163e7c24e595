package worker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"market/config"
	"market/internal/delivery/worker/handler"
	"market/internal/domain/service"
	mockservice "market/internal/mocks/service"
	mockusecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(interval time.Duration) *config.Config {
	cfg := &config.Config{
		Worker: &config.WorkerConfig{Port: 8081, PushPath: "/events", AdminTopic: "admins"},
		Alerts: &config.AlertsConfig{SweepInterval: interval},
	}
	cfg.Env.Env = "local"

	return cfg
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func TestWorkerRoutes(t *testing.T) {
	cfg := testConfig(0)
	push := mockservice.NewMockPushService(t)

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:    cfg,
		Logger:    discardLogger(),
		ProfileUC: mockusecase.NewMockProfileUsecase(t),
		Push:      push,
	})
	pushAuth := handler.NewPushAuth(handler.PushAuthParams{Config: cfg, Logger: discardLogger()})
	e := NewEcho(cfg, discardLogger(), pushHandler, pushAuth)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("push path", func(t *testing.T) {
		push.EXPECT().SendToTopic(mock.Anything, "producer-p1", "Offer approved", mock.Anything, mock.Anything).
			Return(nil).Once()

		data, err := json.Marshal(&service.OfferEvent{
			Type:       service.OfferEventStatusChanged,
			OfferID:    "o1",
			ProducerID: "p1",
			Status:     "approved",
		})
		require.NoError(t, err)
		body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString(data) + `","messageId":"1"}}`

		req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSweeper(t *testing.T) {
	t.Run("runs the sweep on every tick", func(t *testing.T) {
		alerts := mockusecase.NewMockAlertUsecase(t)
		lc := fxtest.NewLifecycle(t)

		swept := make(chan struct{}, 4)
		alerts.EXPECT().SweepCertificates(mock.Anything).
			Run(func(context.Context) { signal(swept) }).
			Return(&usecase.CheckSummary{Producers: 2, Created: 1}, nil)

		s := NewSweeper(SweeperParams{Lc: lc, Cfg: testConfig(5 * time.Millisecond), Logger: discardLogger(), AlertUC: alerts})

		ctx, cancel := context.WithCancel(context.Background())
		served := make(chan error, 1)
		go func() { served <- s.Serve(ctx) }()

		for range 2 {
			select {
			case <-swept:
			case <-time.After(time.Second):
				t.Fatal("sweep did not run")
			}
		}

		cancel()
		require.NoError(t, <-served)
	})

	t.Run("sweep errors keep the loop alive", func(t *testing.T) {
		alerts := mockusecase.NewMockAlertUsecase(t)
		lc := fxtest.NewLifecycle(t)

		swept := make(chan struct{}, 4)
		alerts.EXPECT().SweepCertificates(mock.Anything).
			Run(func(context.Context) { signal(swept) }).
			Return(&usecase.CheckSummary{Producers: 1, Failures: []string{"p1: boom"}}, assert.AnError)

		s := NewSweeper(SweeperParams{Lc: lc, Cfg: testConfig(5 * time.Millisecond), Logger: discardLogger(), AlertUC: alerts})
		lc.RequireStart()

		served := make(chan error, 1)
		go func() { served <- s.Serve(context.Background()) }()

		for range 2 {
			select {
			case <-swept:
			case <-time.After(time.Second):
				t.Fatal("sweep did not run")
			}
		}

		lc.RequireStop()
		require.NoError(t, <-served)
	})

	t.Run("zero interval idles until stop", func(t *testing.T) {
		alerts := mockusecase.NewMockAlertUsecase(t)
		lc := fxtest.NewLifecycle(t)

		s := NewSweeper(SweeperParams{Lc: lc, Cfg: testConfig(0), Logger: discardLogger(), AlertUC: alerts})
		lc.RequireStart()

		served := make(chan error, 1)
		go func() { served <- s.Serve(context.Background()) }()

		lc.RequireStop()

		select {
		case err := <-served:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("sweeper did not stop")
		}
	})
}
