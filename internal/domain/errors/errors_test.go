package errors

import (
	"testing"

	"market/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrOfferNotFound.WithDetails("offer abc")

	assert.True(t, errors.Is(detailed, ErrOfferNotFound))
	assert.True(t, errors.Is(errors.Wrap(detailed, "lookup"), ErrOfferNotFound))
	assert.False(t, errors.Is(detailed, ErrUserNotFound))
}

func TestValidationError(t *testing.T) {
	v := NewValidationError()
	assert.NoError(t, v.OrNil())

	v.Add("price", "must be positive")
	v.Add("price", "ignored")
	v.Add("weekNumber", "required")

	err := v.OrNil()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "must be positive", v.Fields["price"])
	assert.Equal(t, "validation failed: price: must be positive; weekNumber: required", err.Error())

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrProductNotFound.WithDetails("product p9")

	assert.Equal(t, "Product not found: product p9", detailed.Error())
	assert.Equal(t, "Product not found", detailed.Message())
	assert.Empty(t, ErrProductNotFound.Details())
}

func TestValidationError_AddChains(t *testing.T) {
	err := NewValidationError().Add("role", "unknown").Add("email", "required")

	assert.Equal(t, "validation failed: email: required; role: unknown", err.Error())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "insert offer")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 500, err.HTTPCode())
	assert.Equal(t, "Database operation failed", err.Message())
	assert.Contains(t, err.Error(), "connection refused")
}
