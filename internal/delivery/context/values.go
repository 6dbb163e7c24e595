// Package context carries request-scoped values from the delivery layer into use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
	userIDKey
)

// echo.Context keys.
const (
	echoRequestID = "market.request_id"
)

// RequestID returns the request id stored on c, or "" before the request id middleware ran.
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestID).(string)

	return id
}

// SetRequestID stores id on c.
func SetRequestID(c echo.Context, id string) {
	c.Set(echoRequestID, id)
}

// RequestIDFrom returns the request id carried by ctx.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// LoggerFrom returns the request logger carried by ctx, or fallback when there is none.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// UserIDFrom returns the authenticated caller's id, or "" for anonymous requests and background jobs.
func UserIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)

	return id
}

// WithUserID tags ctx with the caller's id and, when ctx carries a request logger, adds user_id to it.
func WithUserID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id)
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", id)))
	}

	return ctx
}
