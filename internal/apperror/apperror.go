// Package apperror defines the domain errors shared by the repository,
// service, and handler layers. Services return these; only the handler
// layer translates them into HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// FieldError describes a single violated field in an inbound payload.
// Validation failures report every violated field, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Err     error        // sentinel cause, for errors.Is
	Message string       // human-readable error message
	Fields  []FieldError // populated for validation errors
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id int) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func ValidationFailed(message string, fields []FieldError) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Fields:  fields,
	}
}
