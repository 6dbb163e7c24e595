// Package api serves the marketplace REST API.
package api

import (
	"log/slog"

	"market/config"
	"market/internal/delivery"
	apimiddleware "market/internal/delivery/api/middleware"
	"market/internal/delivery/api/router"
	"market/internal/delivery/api/validator"
	"market/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewEcho builds the API: the shared middleware stack, CORS, a body size limit, JSON error
// envelopes, request validation and the routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	middleware.Use(e, cfg, logger)
	e.Use(
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(routerParams).RegisterRoutes(e)

	return e
}

// NewServer serves the API over HTTP/1.1 and h2c on http.port.
func NewServer(params ServerParams) delivery.Delivery {
	e := NewEcho(params.Cfg, params.Logger, params.RouterParams)

	return delivery.NewEchoServer(params.Lc, "api", params.Cfg.HTTP.Port, e, params.Logger,
		delivery.WithH2C(&http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout}),
	)
}
