package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"market/internal/delivery/api/response"
	domainerrors "market/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	verr := domainerrors.NewValidationError()
	verr.Add("weekNumber", "is required")

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		details any
	}{
		{
			name:    "validation error keeps field details",
			err:     verr,
			status:  http.StatusBadRequest,
			code:    "VALIDATION_FAILED",
			details: map[string]any{"weekNumber": "is required"},
		},
		{
			name:   "wrapped app error",
			err:    domainerrors.ErrProductNotFound.WrapMessage("lookup"),
			status: http.StatusNotFound,
			code:   "PRODUCT_NOT_FOUND",
		},
		{
			name:   "echo http error",
			err:    echo.ErrMethodNotAllowed,
			status: http.StatusMethodNotAllowed,
			code:   "HTTP_ERROR",
		},
		{
			name:   "unknown error",
			err:    assert.AnError,
			status: http.StatusInternalServerError,
			code:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.details, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_Head(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodHead, "/offers/o1", nil), rec)

	m.HandleHTTPError(domainerrors.ErrOfferNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorMiddleware_LogsServerFailures(t *testing.T) {
	var buf bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/offers", nil), rec)

	m.HandleHTTPError(echo.ErrNotFound, c)
	assert.Empty(t, buf.String())

	m.HandleHTTPError(assert.AnError, echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/offers", nil), httptest.NewRecorder()))
	assert.Contains(t, buf.String(), `"msg":"Request failed"`)
	assert.Contains(t, buf.String(), `"status":500`)
}
