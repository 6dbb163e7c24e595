package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"market/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/idtoken"
)

func googlePayload(email string) *idtoken.Payload {
	return &idtoken.Payload{
		Issuer: "https://accounts.google.com",
		Claims: map[string]any{"email": email, "email_verified": true},
	}
}

func TestPushAuth_Verify(t *testing.T) {
	tests := []struct {
		name           string
		serviceAccount string
		header         string
		payload        *idtoken.Payload
		want           int
	}{
		{name: "missing token", want: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "google token", header: "Bearer signed", payload: googlePayload("push@market.iam"), want: http.StatusNoContent},
		{
			name:    "foreign issuer",
			header:  "Bearer signed",
			payload: &idtoken.Payload{Issuer: "https://evil.example", Claims: map[string]any{"email_verified": true}},
			want:    http.StatusUnauthorized,
		},
		{
			name:    "unverified email",
			header:  "Bearer signed",
			payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{}},
			want:    http.StatusUnauthorized,
		},
		{
			name:           "expected service account",
			serviceAccount: "push@market.iam",
			header:         "Bearer signed",
			payload:        googlePayload("push@market.iam"),
			want:           http.StatusNoContent,
		},
		{
			name:           "other service account",
			serviceAccount: "push@market.iam",
			header:         "Bearer signed",
			payload:        googlePayload("intruder@other.iam"),
			want:           http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var audience string
			auth := &PushAuth{
				enabled:        true,
				serviceAccount: tt.serviceAccount,
				logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate: func(_ context.Context, _, aud string) (*idtoken.Payload, error) {
					audience = aud

					return tt.payload, nil
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/events", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			err := auth.Verify(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})(echo.New().NewContext(req, rec))

			assert.NoError(t, err)
			assert.Equal(t, tt.want, rec.Code)
			if tt.payload != nil {
				assert.Equal(t, "http://example.com/events", audience)
			}
		})
	}
}

func TestNewPushAuth(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider string
		want     bool
	}{
		{name: "google in production", env: "production", provider: "google", want: true},
		{name: "google locally", env: "local", provider: "google"},
		{name: "local provider", env: "production", provider: "local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				PubSub: &config.PubSubConfig{Provider: tt.provider},
				Worker: &config.WorkerConfig{},
			}
			cfg.Env.Env = tt.env

			auth := NewPushAuth(PushAuthParams{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

			assert.Equal(t, tt.want, auth.enabled)
		})
	}
}
