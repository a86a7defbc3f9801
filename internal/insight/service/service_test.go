package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"insightboard/internal/insight/cache"
	"insightboard/internal/insight/metrics"
	"insightboard/internal/insight/models"
	"insightboard/internal/insight/store"
	dErrors "insightboard/pkg/domain-errors"
	"insightboard/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *store.InMemoryStore
	metrics *metrics.Metrics
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = store.NewInMemoryStore(
		models.Record{
			models.FieldTopic:     models.String("oil"),
			models.FieldSector:    models.String("A"),
			models.FieldRegion:    models.String("X"),
			models.FieldIntensity: models.Number(10),
		},
		models.Record{
			models.FieldTopic:     models.String("gas"),
			models.FieldSector:    models.String("B"),
			models.FieldRegion:    models.String("Y"),
			models.FieldIntensity: models.String("20"),
		},
	)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(s.store, WithMetrics(s.metrics))
}

func (s *ServiceSuite) TestDashboardFiltersAndNormalizes() {
	got, err := s.service.Dashboard(s.ctx, models.Query{Topic: "GA"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(models.Number(20), got[0].Get(models.FieldIntensity))
}

func (s *ServiceSuite) TestViewsReadTheFullStore() {
	ins, err := s.service.Insights(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, ins.TotalRecords)
	s.Equal(15.0, *ins.AvgIntensity)

	impacts, err := s.service.SectorImpact(s.ctx)
	s.Require().NoError(err)
	s.Len(impacts, 2)

	opts, err := s.service.Filters(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"A", "B"}, opts.Sectors)

	matrix, err := s.service.Correlation(s.ctx)
	s.Require().NoError(err)
	s.Len(matrix, 3)

	years, err := s.service.TimeAnalysis(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(years, 1)
	s.Equal(2, years[0].Topic)

	s.Equal(5, testutil.CollectAndCount(s.metrics.ViewLatency))
}

func (s *ServiceSuite) TestPredict() {
	got, err := s.service.Predict(s.ctx, models.PredictRequest{Sector: "A", Region: "X"})
	s.Require().NoError(err)
	s.True(got.Valid)
	s.Equal(10.0, got.Intensity)

	got, err = s.service.Predict(s.ctx, models.PredictRequest{Sector: "Z", Region: "X"})
	s.Require().NoError(err)
	s.False(got.Valid)
	s.Zero(got.Intensity)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.Predictions.WithLabelValues("ok")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Predictions.WithLabelValues("invalid")))
}

func (s *ServiceSuite) TestPredictSeesReplacedData() {
	s.Require().NoError(s.store.Replace(s.ctx, []models.Record{{
		models.FieldSector:    models.String("Z"),
		models.FieldRegion:    models.String("X"),
		models.FieldIntensity: models.Number(3),
	}}))

	got, err := s.service.Predict(s.ctx, models.PredictRequest{Sector: "Z", Region: "X"})
	s.Require().NoError(err)
	s.True(got.Valid)
	s.Equal(3.0, got.Intensity)
}

func (s *ServiceSuite) TestStoreFailureBecomesInternalError() {
	svc := New(failingStore{err: errors.New("connection reset")}, WithMetrics(s.metrics))

	_, err := svc.Insights(s.ctx)
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeInternal))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ViewErrors.WithLabelValues(ViewInsights)))

	_, err = svc.Predict(s.ctx, models.PredictRequest{Sector: "A", Region: "X"})
	s.True(dErrors.Is(err, dErrors.CodeInternal))

	svc = New(failingStore{err: fmt.Errorf("mongo store: %w", sentinel.ErrUnavailable)})
	_, err = svc.Dashboard(s.ctx, models.Query{})
	s.True(dErrors.Is(err, dErrors.CodeInternal))
	s.ErrorIs(err, sentinel.ErrUnavailable)
}

func (s *ServiceSuite) TestDeadlineIsAnInternalError() {
	svc := New(failingStore{err: fmt.Errorf("find: %w", context.DeadlineExceeded)})
	_, err := svc.Filters(s.ctx)

	s.True(dErrors.Is(err, dErrors.CodeInternal))
	de, ok := dErrors.As(err)
	s.Require().True(ok)
	s.Equal(http.StatusInternalServerError, dErrors.HTTPStatus(de.Code))
	s.Equal("request timed out", de.Message)
}

func (s *ServiceSuite) TestHealth() {
	s.NoError(s.service.Health(s.ctx))

	err := New(failingStore{err: errors.New("down")}).Health(s.ctx)
	s.True(dErrors.Is(err, dErrors.CodeUnavailable))
}

func (s *ServiceSuite) TestCacheServesRepeatedReads() {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	svc := New(s.store, WithCache(c, time.Minute), WithMetrics(s.metrics))

	first, err := svc.Dashboard(s.ctx, models.Query{Sector: "a"})
	s.Require().NoError(err)

	// A store change is invisible until the cache is cleared, as after a load.
	s.Require().NoError(s.store.Replace(s.ctx, nil))
	second, err := svc.Dashboard(s.ctx, models.Query{Sector: "a"})
	s.Require().NoError(err)
	s.Equal(first, second)

	s.Require().NoError(c.ClearPrefix(s.ctx, cache.KeyPrefix))
	third, err := svc.Dashboard(s.ctx, models.Query{Sector: "a"})
	s.Require().NoError(err)
	s.Empty(third)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.CacheRequests.WithLabelValues(ViewDashboard, "hit")))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.CacheRequests.WithLabelValues(ViewDashboard, "miss")))
}

func (s *ServiceSuite) TestCacheKeysSeparateQueries() {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	svc := New(s.store, WithCache(c, time.Minute))

	a, err := svc.Dashboard(s.ctx, models.Query{Sector: "a"})
	s.Require().NoError(err)
	b, err := svc.Dashboard(s.ctx, models.Query{Sector: "b"})
	s.Require().NoError(err)

	s.Require().Len(a, 1)
	s.Require().Len(b, 1)
	s.NotEqual(a[0].Get(models.FieldTopic), b[0].Get(models.FieldTopic))
}

type failingStore struct {
	err error
}

func (f failingStore) List(context.Context) ([]models.Record, error) { return nil, f.err }
func (f failingStore) Ping(context.Context) error                    { return f.err }
