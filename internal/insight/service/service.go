// Package service orchestrates the insight views: it reads the full record
// set from the store, hands it to the analytics and predict packages, and
// translates infrastructure failures into domain errors.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"insightboard/internal/insight/cache"
	"insightboard/internal/insight/metrics"
	"insightboard/internal/insight/models"
	dErrors "insightboard/pkg/domain-errors"
	"insightboard/pkg/platform/sentinel"
	"insightboard/pkg/requestcontext"
)

const tracerName = "insightboard/internal/insight/service"

// View names used for cache keys, metrics and spans.
const (
	ViewFilters      = "filters"
	ViewDashboard    = "dashboard"
	ViewCorrelation  = "correlation"
	ViewSectorImpact = "sector_impact"
	ViewInsights     = "insights"
	ViewTimeAnalysis = "time_analysis"
	ViewPredict      = "predict"
)

// Store is the read side of the record store.
type Store interface {
	List(ctx context.Context) ([]models.Record, error)
	Ping(ctx context.Context) error
}

// Service computes dashboard views. It holds no state between calls besides
// the optional view cache.
type Service struct {
	store    Store
	cache    cache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables the view cache. Prediction is never cached.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets the logger used for cache failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New builds a service on top of store.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Health reports whether the store is reachable.
func (s *Service) Health(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "record store unavailable")
	}
	return nil
}

// listRecords reads the full record set and classifies failures.
func (s *Service) listRecords(ctx context.Context) ([]models.Record, error) {
	records, err := s.store.List(ctx)
	if err == nil {
		return records, nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "request timed out")
	case errors.Is(err, sentinel.ErrUnavailable):
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "record store unavailable")
	default:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read records")
	}
}

// view runs compute over the full record set inside a span, consulting the
// cache first when one is configured.
func view[T any](ctx context.Context, s *Service, name, query string, compute func([]models.Record) T) (T, error) {
	ctx, span := s.tracer.Start(ctx, "insight."+name, trace.WithAttributes(
		attribute.String("insight.view", name),
	))
	defer span.End()
	start := time.Now()
	defer func() { s.metrics.ObserveView(name, time.Since(start)) }()

	key := cache.Key(name, query)
	if out, ok := cachedGet[T](ctx, s, name, key); ok {
		span.SetAttributes(attribute.Bool("insight.cache_hit", true))
		return out, nil
	}

	var zero T
	records, err := s.listRecords(ctx)
	if err != nil {
		s.metrics.IncrementViewError(name)
		span.RecordError(err)
		span.SetStatus(codes.Error, "list records")
		return zero, err
	}
	span.SetAttributes(attribute.Int("insight.records", len(records)))

	out := compute(records)
	s.cacheSet(ctx, name, key, out)
	return out, nil
}

func cachedGet[T any](ctx context.Context, s *Service, name, key string) (T, bool) {
	var out T
	if s.cache == nil {
		return out, false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrCacheMiss) {
			s.metrics.IncrementCache(name, "miss")
		} else {
			s.metrics.IncrementCache(name, "error")
			s.logger.WarnContext(ctx, "view cache read failed",
				"request_id", requestcontext.RequestID(ctx),
				"view", name,
				"error", err,
			)
		}
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		s.metrics.IncrementCache(name, "error")
		return out, false
	}
	s.metrics.IncrementCache(name, "hit")
	return out, true
}

func (s *Service) cacheSet(ctx context.Context, name, key string, v any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err == nil {
		err = s.cache.Set(ctx, key, data, s.cacheTTL)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "view cache write failed",
			"request_id", requestcontext.RequestID(ctx),
			"view", name,
			"error", err,
		)
	}
}
