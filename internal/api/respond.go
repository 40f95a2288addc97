// ABOUTME: JSON response helpers for the HTTP API
// ABOUTME: Standard success bodies and {error, code, message} error bodies
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/insights"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the body of endpoints that only report an outcome.
type MessageResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
	DreamID string `json:"dream_id,omitempty"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a standardized error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Code:    statusCode,
		Message: message,
	})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, message)
}

func writeNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, message)
}

// writeServiceError maps domain errors onto HTTP statuses. notFound is the
// message used for a 404.
func writeServiceError(w http.ResponseWriter, err error, notFound string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeBadRequest(w, verr.Error())
	case errors.Is(err, domain.ErrValidation):
		writeBadRequest(w, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeNotFound(w, notFound)
	case errors.Is(err, insights.ErrNoEntries):
		writeNotFound(w, "No dreams to export")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}
