// Package response builds the JSON envelopes returned by the API.
package response

import (
	"net/http"

	deliverycontext "market/internal/delivery/context"
	domainerrors "market/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable, e.g. "OFFER_NOT_FOUND"
	Message string `json:"message"`           // Safe to show to the user
	Details any    `json:"details,omitempty"` // Field errors on validation failures
}

type MetaInfo struct {
	RequestID string `json:"request_id,omitempty"`
}

// MessageBody is the payload of mutations that return no resource.
type MessageBody struct {
	Message string `json:"message"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.RequestID(c)}
}

func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: meta(c)})
}

func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, SuccessResponse{Data: data, Meta: meta(c)})
}

func Message(c echo.Context, message string) error {
	return OK(c, MessageBody{Message: message})
}

// Error writes an error envelope. Details never leave the server on 5xx, 401 or 403.
func Error(c echo.Context, status int, code, message string, details any) error {
	if status >= http.StatusInternalServerError || status == http.StatusUnauthorized || status == http.StatusForbidden {
		details = nil
	}

	return c.JSON(status, ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func withStatus(status int) func(c echo.Context, code, message string) error {
	return func(c echo.Context, code, message string) error {
		return Error(c, status, code, message, nil)
	}
}

//nolint:gochecknoglobals
var (
	BadRequest   = withStatus(http.StatusBadRequest)
	BindingError = withStatus(http.StatusBadRequest)
	Unauthorized = withStatus(http.StatusUnauthorized)
	Forbidden    = withStatus(http.StatusForbidden)
	NotFound     = withStatus(http.StatusNotFound)
)

func BadRequestWithDetails(c echo.Context, code, message string, details any) error {
	return Error(c, http.StatusBadRequest, code, message, details)
}

// Failure is a domain error reduced to what the client sees.
type Failure struct {
	Status  int
	Code    string
	Message string
	Details any
}

// FromDomain maps validation and application errors anywhere in err's chain. ok is false for
// any other error.
func FromDomain(err error) (f Failure, ok bool) {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return Failure{validationErr.HTTPCode(), validationErr.ErrorCode(), validationErr.Message(), validationErr.Fields}, true
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Failure{Status: appErr.HTTPCode(), Code: appErr.ErrorCode(), Message: appErr.Message()}, true
	}

	return Failure{}, false
}

// HandleAppError writes domain errors as responses and hands anything else to the central
// error handler.
func HandleAppError(c echo.Context, err error) error {
	if f, ok := FromDomain(err); ok {
		return Error(c, f.Status, f.Code, f.Message, f.Details)
	}

	return errors.WithStack(err)
}
