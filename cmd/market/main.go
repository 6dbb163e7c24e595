// Command market serves the marketplace REST API.
package main

import (
	"context"
	"log/slog"
	"os"

	"market/config"
	"market/internal/app"
	"market/internal/delivery/api"
	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/router/handler"
	"market/internal/domain/service"
	"market/internal/infra/auth"
	"market/internal/infra/pubsub"
	"market/internal/infra/qrcode"
	"market/internal/usecase/impl"

	firebase "firebase.google.com/go/v4"
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
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(app.StartDeliveries),
	).Run()
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newIdentityVerifier,
			qrcode.NewQRCodeService,
		),
	)
}

// newIdentityVerifier accepts Firebase ID tokens only when enabled and Firebase is configured.
func newIdentityVerifier(ctx context.Context, cfg *config.Config, fbApp *firebase.App) (service.IdentityVerifier, error) {
	if fbApp == nil || cfg.Firebase == nil || !cfg.Firebase.VerifyIDTokens {
		return nil, nil
	}

	return auth.NewFirebaseVerifier(ctx, fbApp)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewOfferService,
			impl.NewProductService,
			impl.NewNewsService,
			impl.NewAuthorizationService,
			impl.NewAlertService,
			impl.NewLiveCollections,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOfferHandler,
			handler.NewCatalogHandler,
			handler.NewAuthorizationHandler,
			handler.NewAlertHandler,
			handler.NewUserHandler,
			handler.NewWeekHandler,
			handler.NewLiveHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
