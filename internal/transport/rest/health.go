package rest

import (
	"context"
	"net/http"
	"time"
)

// storePinger defines the minimal interface for advocate store health checks.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   storePinger
	driver  string
	version string
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler. driver names the store component
// in the /health response.
func NewHealthHandler(store storePinger, driver, version string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver, version: version, timeout: 3 * time.Second}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Driver  string `json:"driver,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the store: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings the store with latency measurement
// and includes version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	latency := time.Since(start)

	comp := CompStatus{Status: "ok", Driver: h.driver, Latency: latency.String()}
	overallStatus := "ok"
	status := http.StatusOK
	if err != nil {
		comp = CompStatus{Status: "down", Driver: h.driver}
		overallStatus = "down"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: map[string]CompStatus{"store": comp},
		Timestamp:  time.Now(),
	})
}
