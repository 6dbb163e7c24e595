package middleware

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/api/response"
	deliverycontext "market/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware renders errors returned by handlers as JSON error envelopes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Server-side failures are logged with the
// full error and answered with a generic message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	f := classify(err)
	if f.Status >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.LoggerFrom(req.Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", f.Status),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(f.Status)

		return
	}

	_ = response.Error(c, f.Status, f.Code, f.Message, f.Details)
}

func classify(err error) response.Failure {
	if f, ok := response.FromDomain(err); ok {
		return f
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return response.Failure{Status: httpErr.Code, Code: "HTTP_ERROR", Message: message}
	}

	return response.Failure{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: internalErrorMessage}
}
