package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"insightboard/internal/insight/handler"
	"insightboard/internal/insight/models"
	"insightboard/internal/insight/service"
	"insightboard/internal/insight/store"
	"insightboard/internal/platform/metrics"
	"insightboard/pkg/testutil"
)

type RouterSuite struct {
	suite.Suite
	router http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.router = newTestRouter(store.NewInMemoryStore(
		models.Record{
			models.FieldSector:    models.String("A"),
			models.FieldRegion:    models.String("Northern Africa"),
			models.FieldIntensity: models.Number(10),
		},
		models.Record{
			models.FieldSector:    models.String("B"),
			models.FieldRegion:    models.String("Western Asia"),
			models.FieldIntensity: models.Number(20),
		},
	), nil)
}

func newTestRouter(st service.Store, health HealthChecker) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	svc := service.New(st, service.WithLogger(logger))
	if health == nil {
		health = svc
	}
	return NewRouter(Config{
		Logger:   logger,
		Metrics:  metrics.New(reg),
		Gatherer: reg,
		Health:   health,
	}, handler.New(svc, logger))
}

func (s *RouterSuite) TestUnmatchedRoutesReturnNotFound() {
	cases := []struct{ method, path string }{
		{http.MethodGet, "/"},
		{http.MethodGet, "/api/data/unknown"},
		{http.MethodPost, "/api/data/insights"},
		{http.MethodDelete, "/api/data/dashboard"},
		{http.MethodGet, "/api/data/predict"},
		{http.MethodPut, "/nope"},
	}
	for _, tc := range cases {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), tc.method, tc.path))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "Not found")
	}
}

func (s *RouterSuite) TestDashboardContainment() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/data/dashboard?region=africa"))

	testutil.AssertStatusOK(s.T(), rr)
	s.JSONEq(`[{"sector":"A","region":"Northern Africa","intensity":10}]`, rr.Body.String())
}

func (s *RouterSuite) TestPredictRoundTrip() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/data/predict", map[string]string{"sector": "A", "region": "Northern Africa"})
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatusOK(s.T(), rr)
	s.JSONEq(`{"predicted_intensity":10}`, rr.Body.String())

	req = testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/data/predict", map[string]string{"sector": "Z", "region": "Northern Africa"})
	rr = testutil.DoRequest(s.router, req)
	testutil.AssertStatusOK(s.T(), rr)
	s.JSONEq(`{"error":"Invalid sector or region value","predicted_intensity":0}`, rr.Body.String())
}

func (s *RouterSuite) TestResponsesCarryRequestID() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/data/filters"))
	testutil.AssertStatusOK(s.T(), rr)
	s.NotEmpty(rr.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestHealthz() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/healthz"))
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "status", "ok")

	down := newTestRouter(store.NewInMemoryStore(), failingHealth{})
	rr = testutil.DoRequest(down, testutil.NewRequest(s.T(), http.MethodGet, "/healthz"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusServiceUnavailable, "record store unavailable")
}

func (s *RouterSuite) TestMetricsEndpoint() {
	testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/data/insights"))

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/metrics"))
	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	s.Contains(rr.Body.String(), "insights_http_request_duration_seconds")
}

type failingHealth struct{}

func (failingHealth) Health(context.Context) error { return errors.New("down") }
