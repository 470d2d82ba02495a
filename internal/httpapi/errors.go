package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/divvyhq/divvy/internal/service"
)

// errorResponse is the JSON error envelope for every failure.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps a service error kind to an HTTP status and renders the
// error envelope. Unclassified errors are treated as store unavailability so
// no raw internals leak to callers.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusServiceUnavailable
	message := "service unavailable"

	var se *service.Error
	if errors.As(err, &se) {
		message = se.Message
		switch se.Kind {
		case service.KindInvalidInput:
			status = http.StatusBadRequest
		case service.KindUnauthenticated:
			status = http.StatusUnauthorized
		case service.KindForbidden:
			status = http.StatusForbidden
		case service.KindNotFound:
			status = http.StatusNotFound
		case service.KindUnavailable:
			status = http.StatusServiceUnavailable
		}
	} else {
		slog.Error("Unclassified error reached HTTP layer", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: message})
}

// writeJSON renders v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// decodeJSON parses the request body into v. A malformed body is a caller
// error, reported as 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
