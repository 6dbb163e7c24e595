package errors

import "net/http"

func define(status int, code, message string) *BaseError {
	return NewBaseError(status, code, message, "")
}

// Accounts and authentication.
//
//nolint:gochecknoglobals
var (
	ErrUserNotFound       = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists  = define(http.StatusConflict, "USER_ALREADY_EXISTS", "This email is already registered")
	ErrUserCreationFailed = define(http.StatusInternalServerError, "USER_CREATION_FAILED", "Failed to create user")
	ErrInvalidCredentials = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrTokenInvalid       = define(http.StatusUnauthorized, "TOKEN_INVALID", "Invalid or expired token")
	ErrPasswordHashFailed = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed")
	ErrForbidden          = define(http.StatusForbidden, "FORBIDDEN", "Access denied")
)

// Offers.
//
//nolint:gochecknoglobals
var (
	ErrOfferNotFound        = define(http.StatusNotFound, "OFFER_NOT_FOUND", "Offer not found")
	ErrInvalidOfferStatus   = define(http.StatusBadRequest, "INVALID_OFFER_STATUS", "Unknown offer status")
	ErrOfferWeekClosed      = define(http.StatusUnprocessableEntity, "OFFER_WEEK_CLOSED", "Offers can only be submitted for the submission week")
	ErrProductNotAuthorized = define(http.StatusForbidden, "PRODUCT_NOT_AUTHORIZED", "Producer is not authorized for this product")
)

// Catalog, news and certificate alerts.
//
//nolint:gochecknoglobals
var (
	ErrProductNotFound      = define(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrProductAlreadyExists = define(http.StatusConflict, "PRODUCT_ALREADY_EXISTS", "A product with this name already exists")
	ErrNewsNotFound         = define(http.StatusNotFound, "NEWS_NOT_FOUND", "News item not found")
	ErrAlertNotFound        = define(http.StatusNotFound, "ALERT_NOT_FOUND", "Alert not found")
	ErrInvalidAlertStatus   = define(http.StatusBadRequest, "INVALID_ALERT_STATUS", "Unknown alert status")
)

//nolint:gochecknoglobals
var (
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrConflict         = define(http.StatusConflict, "CONFLICT", "Resource conflict")
)
