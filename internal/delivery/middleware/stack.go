package middleware

import (
	"log/slog"

	"market/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Use installs the middleware every server starts with: panic recovery, then request ids, then
// request logging, so log lines carry the id.
func Use(e *echo.Echo, cfg *config.Config, logger *slog.Logger) {
	e.Use(
		echomiddleware.Recover(),
		RequestID(logger),
		NewLoggerMiddleware(logger, cfg).Handle,
	)
}
