package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"insightboard/internal/platform/metrics"
	"insightboard/internal/platform/middleware"
	dErrors "insightboard/pkg/domain-errors"
	"insightboard/pkg/platform/httputil"
	"insightboard/pkg/platform/middleware/metadata"
	"insightboard/pkg/platform/middleware/requesttime"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Registrar mounts a group of endpoints on the router.
type Registrar interface {
	Register(r chi.Router)
}

// Config carries the dependencies and knobs of the HTTP surface.
type Config struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Health         HealthChecker
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires the middleware chain, the operational routes and every
// registrar. Unknown paths and known paths with the wrong method both answer
// 404 with the standard envelope.
func NewRouter(cfg Config, registrars ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(requesttime.Middleware)
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Latency(cfg.Metrics))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.Logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/healthz", healthz(cfg.Health))
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	for _, reg := range registrars {
		reg.Register(r)
	}
	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "Not found"))
}

func healthz(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.Health(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, httputil.ErrorResponse{Error: "record store unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
