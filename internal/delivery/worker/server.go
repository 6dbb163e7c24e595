// Package worker runs the background process: the Pub/Sub push endpoint for offer events
// and the certificate expiry sweep.
package worker

import (
	"log/slog"
	"net/http"

	"market/config"
	"market/internal/delivery"
	"market/internal/delivery/middleware"
	"market/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	PushAuth    *handler.PushAuth
}

// NewEcho serves the health probe and the push endpoint at worker.pushPath.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler, pushAuth *handler.PushAuth) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Use(e, cfg, logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(cfg.Worker.PushPath, pushHandler.HandlePush, pushAuth.Verify)

	return e
}

func NewServer(params ServerParams) delivery.Delivery {
	e := NewEcho(params.Cfg, params.Logger, params.PushHandler, params.PushAuth)

	return delivery.NewEchoServer(params.Lc, "worker", params.Cfg.Worker.Port, e, params.Logger)
}
