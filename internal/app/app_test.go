package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"market/config"
	"market/internal/delivery"
	"market/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type deliveryFunc func(ctx context.Context) error

func (f deliveryFunc) Serve(ctx context.Context) error { return f(ctx) }

func asDelivery(d delivery.Delivery) any {
	return fx.Annotate(func() delivery.Delivery { return d }, fx.ResultTags(`group:"deliveries"`))
}

func TestStartDeliveries_ShutsDownOnFailure(t *testing.T) {
	app := fxtest.New(t,
		fx.Supply(slog.New(slog.NewTextHandler(io.Discard, nil))),
		fx.Provide(context.Background),
		fx.Provide(asDelivery(deliveryFunc(func(context.Context) error {
			return errors.New("listen failed")
		}))),
		fx.Invoke(StartDeliveries),
	)
	app.RequireStart()
	defer app.RequireStop()

	select {
	case sig := <-app.Wait():
		assert.Equal(t, 1, sig.ExitCode)
	case <-time.After(time.Second):
		t.Fatal("app was not shut down")
	}
}

func TestStartDeliveries_CleanReturnKeepsRunning(t *testing.T) {
	served := make(chan struct{})
	app := fxtest.New(t,
		fx.Supply(slog.New(slog.NewTextHandler(io.Discard, nil))),
		fx.Provide(context.Background),
		fx.Provide(asDelivery(deliveryFunc(func(context.Context) error {
			close(served)

			return nil
		}))),
		fx.Invoke(StartDeliveries),
	)
	app.RequireStart()
	defer app.RequireStop()

	<-served
	select {
	case <-app.Wait():
		t.Fatal("app shut down after a clean return")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestInfra_RejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: &config.StoreConfig{Driver: "mongo"}}

	_, err := Infra(context.Background(), cfg)

	require.Error(t, err)
}
