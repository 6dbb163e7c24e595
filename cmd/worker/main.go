// Command worker receives offer events from Pub/Sub push subscriptions and runs the certificate sweep.
package main

import (
	"context"
	"log/slog"
	"os"

	"market/config"
	"market/internal/app"
	"market/internal/delivery/worker"
	"market/internal/delivery/worker/handler"
	"market/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	infra, err := app.Infra(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to select store", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		infra,
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(app.StartDeliveries),
	).Run()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewAlertService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewPushAuth,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
