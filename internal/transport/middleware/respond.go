package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

// errorBody mirrors the error shape the REST handlers produce.
type errorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	if status >= http.StatusInternalServerError && body.Timestamp == "" {
		body.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
