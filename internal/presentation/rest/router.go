package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter registers the time deposit, health and metrics routes.
// metrics may be nil when no scrape endpoint is exposed.
func NewRouter(h *TimeDepositHandler, health *HealthHandler, metrics http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", health.Liveness)
	r.Get("/readyz", health.Readiness)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Patch("/update-all-accounts", h.UpdateAllAccounts)
	r.Get("/get-all-accounts", h.GetAllAccounts)

	return r
}
