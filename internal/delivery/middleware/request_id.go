package middleware

import (
	"log/slog"
	"regexp"

	deliverycontext "market/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// RequestID keeps a short printable X-Request-Id sent by the caller and generates one otherwise.
// The id is echoed in the response; the request context gets the id and a logger carrying it.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if !validRequestID.MatchString(id) {
				id = uuid.NewString()
			}

			deliverycontext.SetRequestID(c, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			ctx := deliverycontext.WithRequestID(req.Context(), id)
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", id)))
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
