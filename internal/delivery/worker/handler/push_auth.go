package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator validates a Google-signed OIDC token for audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushAuth checks the OIDC token Pub/Sub attaches to authenticated push requests.
type PushAuth struct {
	enabled        bool
	serviceAccount string
	validate       TokenValidator
	logger         *slog.Logger
}

type PushAuthParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushAuth enables verification for the google provider outside local environments.
func NewPushAuth(params PushAuthParams) *PushAuth {
	cfg := params.Config

	return &PushAuth{
		enabled: cfg.PubSub != nil &&
			cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
			cfg.Env.Env != constants.EnvLocal,
		serviceAccount: cfg.Worker.PushServiceAccount,
		validate:       idtoken.Validate,
		logger:         params.Logger,
	}
}

// Verify answers 401 to push requests without a valid token.
func (a *PushAuth) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !a.enabled {
			return next(c)
		}

		if err := a.check(c.Request()); err != nil {
			deliverycontext.LoggerFrom(c.Request().Context(), a.logger).Warn("Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}

		return next(c)
	}
}

func (a *PushAuth) check(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	// Push subscriptions use the endpoint URL as audience unless configured otherwise.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	payload, err := a.validate(req.Context(), token, scheme+"://"+req.Host+req.URL.Path)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return errors.New("email not verified")
	}

	if a.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != a.serviceAccount {
			return errors.Errorf("unexpected service account %q", email)
		}
	}

	return nil
}
