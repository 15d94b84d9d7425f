package rest

import (
	"encoding/json"
	"net/http"
	"time"
)

// clientErrorResponse is the body of every 4xx response.
type clientErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// serverErrorResponse is the body of every 5xx response. Message is generic;
// the root cause only reaches the server log.
type serverErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeClientError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, clientErrorResponse{
		Error:   "Validation failed",
		Message: message,
		Code:    code,
	})
}

func writeServerError(w http.ResponseWriter, message string, now time.Time) {
	writeJSON(w, http.StatusInternalServerError, serverErrorResponse{
		Error:     "Internal server error",
		Message:   message,
		Timestamp: now.UTC().Format(time.RFC3339),
	})
}
