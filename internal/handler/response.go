// Package handler contains the HTTP binding layer: decode the request,
// call the service, format the response. No business logic lives here.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/artifyai/storefront/internal/apperror"
)

// ErrorResponse is the standard error body for every endpoint: always a
// message, plus a per-field violation list for validation failures.
type ErrorResponse struct {
	Message string               `json:"message"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
}

// writeJSON sends a JSON response. Headers and status must be written
// before the body — Encode writes the body.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError translates a domain error into an HTTP response. This is the
// only place repository/service outcomes become status codes:
//
//	apperror.ErrValidation → 400 with the full field violation list
//	apperror.ErrNotFound   → 404
//	anything else          → 500 with the route's generic fallback message
//
// Internal detail never reaches the client — the raw error goes to the
// server log at the call site, the client only sees fallback.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperror.ErrValidation):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Message: appErr.Message,
				Errors:  appErr.Fields,
			})
			return
		case errors.Is(err, apperror.ErrNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Message: appErr.Message})
			return
		}
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: fallback})
}
