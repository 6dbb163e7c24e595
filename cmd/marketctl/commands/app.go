package commands

import (
	"context"

	"market/config"
	"market/internal/app"
	"market/internal/usecase/impl"

	"go.uber.org/fx"
)

// runWithStore starts the configured store and the use cases on top of it, fills targets
// (pointers, as for fx.Populate), calls fn and stops the app again.
func runWithStore(ctx context.Context, cfg *config.Config, fn func(context.Context) error, targets ...any) error {
	infra, err := app.Infra(ctx, cfg)
	if err != nil {
		return err
	}

	fxApp := fx.New(
		fx.NopLogger,
		infra,
		fx.Provide(
			impl.NewProfileService,
			impl.NewAlertService,
		),
		fx.Populate(targets...),
	)
	if err := fxApp.Err(); err != nil {
		return err
	}

	if err := fxApp.Start(ctx); err != nil {
		return err
	}

	runErr := fn(ctx)

	if err := fxApp.Stop(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		return err
	}

	return runErr
}
