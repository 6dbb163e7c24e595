// Package app holds the fx wiring shared by the market server, the worker and marketctl.
package app

import (
	"context"
	"log/slog"

	"market/config"
	"market/internal/delivery"
	firebaseapp "market/internal/infra/firebase"
	logs "market/internal/infra/log"
	"market/internal/infra/metrics"
	"market/internal/infra/notification"
	"market/internal/infra/persistence"

	"go.uber.org/fx"
)

// Infra provides the configuration, the root context, logging, Firebase, metrics,
// notifications and the repositories of the configured store driver.
func Infra(ctx context.Context, cfg *config.Config) (fx.Option, error) {
	store, err := persistence.Module(cfg.Store.Driver)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			func() context.Context { return ctx },
			logs.New,
			firebaseapp.New,
		),
		metrics.Module,
		notification.Module,
		store,
	), nil
}

type DeliveryParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// StartDeliveries serves every delivery in its own goroutine. A delivery that
// fails shuts the whole app down so the OnStop hooks of the others still run.
func StartDeliveries(ctx context.Context, params DeliveryParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}

			params.Logger.Error("Delivery stopped", slog.Any("error", err))
			if err := params.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
			}
		}()
	}
}
