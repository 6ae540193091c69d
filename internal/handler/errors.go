package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/eeplog/backend/internal/domain"
)

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WarnContext(r.Context(), "write response", "error", err)
	}
}

// notFound writes a 404. The caller supplies the message (e.g. "stay not found")
// because the handler is the layer that knows what was being looked up.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request, message string) {
	s.writeJSON(w, r, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}})
}

// invalid writes a 422 for input rejected before or by the service layer.
func (s *Server) invalid(w http.ResponseWriter, r *http.Request, message string) {
	s.writeJSON(w, r, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}})
}

// fail maps a service error to a response. Sentinel errors get their own
// status; anything else is logged and hidden behind a generic 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.notFound(w, r, notFoundMessage)
	case errors.Is(err, domain.ErrValidation):
		s.invalid(w, r, unwrapMessage(err))
	default:
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		s.writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}})
	}
}

// unwrapMessage extracts the human-readable part of a wrapped validation error.
// e.g. `validation error: "2025-13-01" is not a YYYY-MM-DD date` → `"2025-13-01" is not a YYYY-MM-DD date`
func unwrapMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
