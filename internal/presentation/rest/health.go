package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	pgpkg "github.com/xabank/time-deposit/pkg/postgres"
)

// HealthHandler provides HTTP health check endpoints.
type HealthHandler struct {
	serviceName string
	startedAt   time.Time
	db          pgpkg.Pinger
	logger      *slog.Logger
}

func NewHealthHandler(serviceName string, db pgpkg.Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		startedAt:   time.Now(),
		db:          db,
		logger:      logger,
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

type readinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

// Liveness handles GET /healthz.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Service: h.serviceName,
		Uptime:  time.Since(h.startedAt).String(),
	})
}

// Readiness handles GET /readyz. It reports 503 while the database is unreachable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	checks := map[string]string{"database": "ok"}
	if err := pgpkg.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warn("readiness check failed", "error", err)
		checks["database"] = err.Error()
		status, code = "unavailable", http.StatusServiceUnavailable
	}

	writeJSON(w, code, readinessResponse{
		Status:  status,
		Service: h.serviceName,
		Checks:  checks,
	})
}
