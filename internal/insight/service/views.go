package service

import (
	"context"

	"insightboard/internal/insight/analytics"
	"insightboard/internal/insight/models"
)

// Filters returns the distinct values offered by each filter control.
func (s *Service) Filters(ctx context.Context) (models.FilterOptions, error) {
	return view(ctx, s, ViewFilters, "", analytics.Options)
}

// Dashboard returns the records matching q with normalized scores.
func (s *Service) Dashboard(ctx context.Context, q models.Query) ([]models.Record, error) {
	return view(ctx, s, ViewDashboard, q.Key(), func(records []models.Record) []models.Record {
		return analytics.Filter(records, q)
	})
}

// Correlation returns the pairwise score correlation matrix.
func (s *Service) Correlation(ctx context.Context) (models.CorrelationMatrix, error) {
	return view(ctx, s, ViewCorrelation, "", analytics.Correlation)
}

// SectorImpact returns per-sector score means.
func (s *Service) SectorImpact(ctx context.Context) ([]models.SectorImpact, error) {
	return view(ctx, s, ViewSectorImpact, "", analytics.SectorImpacts)
}

// Insights returns the headline summary.
func (s *Service) Insights(ctx context.Context) (models.Insights, error) {
	return view(ctx, s, ViewInsights, "", analytics.Headline)
}

// TimeAnalysis returns per-end_year score means.
func (s *Service) TimeAnalysis(ctx context.Context) ([]models.YearSummary, error) {
	return view(ctx, s, ViewTimeAnalysis, "", analytics.TimeAnalysis)
}
