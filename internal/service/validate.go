// Package service contains the business layer: payload validation and
// orchestration between the HTTP handlers and the storage backend.
// Services return domain errors from internal/apperror; they never touch
// HTTP status codes.
package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/artifyai/storefront/internal/apperror"
)

// newValidator builds the payload validator shared by all services. Field
// names in violation output use the json tag, since that is the name the
// client actually sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validatePayload runs struct validation and converts the violation list —
// every violated field, not just the first — into a single domain
// validation error.
func validatePayload(v *validator.Validate, payload any, message string) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Non-validation failure (e.g. a nil payload) — treat as internal.
		return fmt.Errorf("validating payload: %w", err)
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return apperror.ValidationFailed(message, fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
