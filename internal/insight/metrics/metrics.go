package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the insight views.
type Metrics struct {
	// View computation latency by view name
	ViewLatency *prometheus.HistogramVec

	// View failures by view name
	ViewErrors *prometheus.CounterVec

	// Prediction outcomes: "ok", "invalid", "error"
	Predictions *prometheus.CounterVec

	// Cache lookups by view and result ("hit", "miss", "error")
	CacheRequests *prometheus.CounterVec

	// Records written by the most recent load
	RecordsLoaded prometheus.Gauge
}

// New creates the insight metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ViewLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "insights_view_duration_seconds",
			Help:    "Duration of view computation including the store read",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"view"}),

		ViewErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "insights_view_errors_total",
			Help: "Total view computations that failed",
		}, []string{"view"}),

		Predictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "insights_predictions_total",
			Help: "Total intensity predictions by outcome",
		}, []string{"outcome"}),

		CacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "insights_cache_requests_total",
			Help: "Total view cache lookups by result",
		}, []string{"view", "result"}),

		RecordsLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Name: "insights_records_loaded",
			Help: "Number of records written by the most recent load",
		}),
	}
}

// ObserveView records the duration of computing a view.
func (m *Metrics) ObserveView(view string, d time.Duration) {
	if m != nil {
		m.ViewLatency.WithLabelValues(view).Observe(d.Seconds())
	}
}

// IncrementViewError records a failed view computation.
func (m *Metrics) IncrementViewError(view string) {
	if m != nil {
		m.ViewErrors.WithLabelValues(view).Inc()
	}
}

// IncrementPrediction records a prediction outcome.
func (m *Metrics) IncrementPrediction(outcome string) {
	if m != nil {
		m.Predictions.WithLabelValues(outcome).Inc()
	}
}

// IncrementCache records a cache lookup result.
func (m *Metrics) IncrementCache(view, result string) {
	if m != nil {
		m.CacheRequests.WithLabelValues(view, result).Inc()
	}
}

// SetRecordsLoaded records the size of the latest load.
func (m *Metrics) SetRecordsLoaded(n int) {
	if m != nil {
		m.RecordsLoaded.Set(float64(n))
	}
}
