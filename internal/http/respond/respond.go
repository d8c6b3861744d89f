package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorEnvelope is the body written for every failed request. Clients only
// rely on the status line; the envelope is for humans reading the response.
type ErrorEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON writes data as the bare response body.
func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, data)
}

// Error writes an error response with the shared envelope structure.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, ErrorEnvelope{Code: status, Message: message})
}

// NoContent writes an empty success response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("respond: encode payload failed", "error", err)
	}
}
