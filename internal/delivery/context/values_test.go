package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
	assert.Empty(t, RequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", RequestID(c))

	ctx := context.Background()
	assert.Empty(t, RequestIDFrom(ctx))
	assert.Equal(t, "req-1", RequestIDFrom(WithRequestID(ctx, "req-1")))
}

func TestLoggerFrom(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := slog.New(slog.DiscardHandler).With(slog.String("request_id", "r"))

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Same(t, scoped, LoggerFrom(WithLogger(context.Background(), scoped), fallback))
}

func TestWithUserID(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx = WithUserID(ctx, "u1")
	LoggerFrom(ctx, nil).Info("hello")

	assert.Equal(t, "u1", UserIDFrom(ctx))
	assert.Contains(t, buf.String(), `"user_id":"u1"`)

	bare := WithUserID(context.Background(), "u2")
	assert.Equal(t, "u2", UserIDFrom(bare))
	assert.Nil(t, LoggerFrom(bare, nil))
}
