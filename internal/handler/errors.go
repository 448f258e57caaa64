package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ridesmart/backend/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorMapping ties a domain sentinel to its HTTP status and code.
var errorMapping = []struct {
	sentinel error
	status   int
	code     string
}{
	{domain.ErrValidation, http.StatusBadRequest, "validation_error"},
	{domain.ErrIntegrity, http.StatusBadRequest, "integrity_error"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
}

// writeError writes an ErrorResponse with the given status.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeServiceError maps an error returned by a service onto a response.
// notFound, when non-empty, replaces the message for domain.ErrNotFound because
// the handler is the layer that knows what was being looked up.
// Unknown errors are logged and answered with 500 without leaking details.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	for _, m := range errorMapping {
		if !errors.Is(err, m.sentinel) {
			continue
		}
		msg := unwrapMessage(err, m.sentinel)
		if m.sentinel == domain.ErrNotFound && notFound != "" {
			msg = notFound
		}
		writeError(w, m.status, m.code, msg)
		return
	}

	slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

// unwrapMessage extracts the human-readable part after the sentinel text.
// e.g. "service.UserService.Register: validation error: missing required fields: email"
// → "missing required fields: email". Falls back to the sentinel text itself.
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}
