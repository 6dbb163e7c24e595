// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "market/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator. Failures are reported as a field-keyed
// ValidationError using the JSON names of the request fields.
type Validator struct {
	validate *playground.Validate
}

// New creates a Validator.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	validationErr := domainerrors.NewValidationError()
	for _, fieldErr := range fieldErrs {
		validationErr.Add(fieldPath(fieldErr.Namespace()), describe(fieldErr))
	}

	return validationErr
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		if name = field.Tag.Get("query"); name == "" {
			return field.Name
		}
	}

	return name
}

// fieldPath drops the struct name from a namespace ("submitOfferRequest.products[0].price").
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

func describe(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "min":
		if fieldErr.Kind() == reflect.String {
			return "must be at least " + fieldErr.Param() + " characters"
		}

		return "must be at least " + fieldErr.Param()
	case "max":
		if fieldErr.Kind() == reflect.String {
			return "must be at most " + fieldErr.Param() + " characters"
		}

		return "must be at most " + fieldErr.Param()
	case "gt":
		return "must be greater than " + fieldErr.Param()
	case "gte":
		return "must be greater than or equal to " + fieldErr.Param()
	case "lte":
		return "must be less than or equal to " + fieldErr.Param()
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	default:
		return "failed the " + fieldErr.Tag() + " check"
	}
}
