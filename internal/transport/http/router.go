// Package httptransport assembles the public HTTP surface: middleware chain,
// domain handlers, health, and metrics.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gangway/internal/platform/middleware"
	"gangway/pkg/platform/httputil"
)

// Registrar mounts a handler's routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires the middleware chain and mounts all registered handlers.
// A nil validator disables bearer token parsing; every request then runs
// anonymously.
func NewRouter(validator middleware.TokenValidator, logger *slog.Logger, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if validator != nil {
		r.Use(middleware.Identity(validator, logger))
	}

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
