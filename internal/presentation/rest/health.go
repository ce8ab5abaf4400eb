package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/credbureau/scoring-service/internal/domain/port"
)

// HealthHandler provides HTTP health check endpoints for the scoring service.
type HealthHandler struct {
	model     port.ModelClient
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(model port.ModelClient, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		model:     model,
		logger:    logger,
		startTime: time.Now(),
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// StatusResponse is the JSON response for readiness and status checks.
type StatusResponse struct {
	Checks  map[string]string `json:"checks"`
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Message string            `json:"message,omitempty"`
}

// RegisterRoutes registers health endpoints on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
	mux.HandleFunc("GET /status", h.Status)
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "healthy",
		Service: "scoring-service",
		Uptime:  time.Since(h.startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Readyz handles readiness probe requests. Readiness follows the model
// client: the service cannot score without a reachable model.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w, r.Context())
}

// Status reports whether the prediction capability is online, mirroring the
// model server's own status endpoint.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w, r.Context())
}

func (h *HealthHandler) writeStatus(w http.ResponseWriter, ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	checks := map[string]string{"model": "ok"}
	code := http.StatusOK
	resp := StatusResponse{
		Status:  "ready",
		Service: "scoring-service",
		Checks:  checks,
	}

	if err := h.model.Health(checkCtx); err != nil {
		h.logger.Warn("model health check failed", slog.String("error", err.Error()))
		checks["model"] = "unavailable"
		code = http.StatusServiceUnavailable
		resp.Status = "error"
		resp.Message = "prediction capability is unavailable"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}
