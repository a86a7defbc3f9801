package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"insightboard/internal/insight/models"
	"insightboard/pkg/platform/httputil"
	"insightboard/pkg/requestcontext"
)

// Service defines the interface for insight operations.
type Service interface {
	Filters(ctx context.Context) (models.FilterOptions, error)
	Dashboard(ctx context.Context, q models.Query) ([]models.Record, error)
	Correlation(ctx context.Context) (models.CorrelationMatrix, error)
	SectorImpact(ctx context.Context) ([]models.SectorImpact, error)
	Insights(ctx context.Context) (models.Insights, error)
	TimeAnalysis(ctx context.Context) ([]models.YearSummary, error)
	Predict(ctx context.Context, req models.PredictRequest) (models.Prediction, error)
}

// Handler wires the dashboard endpoints to the insight service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an insight handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the dashboard endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/data", func(r chi.Router) {
		r.Get("/filters", h.HandleFilters)
		r.Get("/dashboard", h.HandleDashboard)
		r.Get("/correlation", h.HandleCorrelation)
		r.Get("/sector-impact", h.HandleSectorImpact)
		r.Get("/insights", h.HandleInsights)
		r.Post("/predict", h.HandlePredict)
		r.Get("/time-analysis", h.HandleTimeAnalysis)
	})
}

// HandleFilters handles GET /api/data/filters.
func (h *Handler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	opts, err := h.service.Filters(r.Context())
	h.respond(w, r, "filters", opts, err)
}

// HandleDashboard handles GET /api/data/dashboard with optional containment
// filters end_year, topic, sector, region and pestle.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	q := models.QueryFromValues(r.URL.Query())
	records, err := h.service.Dashboard(r.Context(), q)
	h.respond(w, r, "dashboard", records, err)
}

// HandleCorrelation handles GET /api/data/correlation.
func (h *Handler) HandleCorrelation(w http.ResponseWriter, r *http.Request) {
	matrix, err := h.service.Correlation(r.Context())
	h.respond(w, r, "correlation", matrix, err)
}

// HandleSectorImpact handles GET /api/data/sector-impact.
func (h *Handler) HandleSectorImpact(w http.ResponseWriter, r *http.Request) {
	impacts, err := h.service.SectorImpact(r.Context())
	h.respond(w, r, "sector-impact", impacts, err)
}

// HandleInsights handles GET /api/data/insights.
func (h *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	ins, err := h.service.Insights(r.Context())
	h.respond(w, r, "insights", ins, err)
}

// HandleTimeAnalysis handles GET /api/data/time-analysis.
func (h *Handler) HandleTimeAnalysis(w http.ResponseWriter, r *http.Request) {
	years, err := h.service.TimeAnalysis(r.Context())
	h.respond(w, r, "time-analysis", years, err)
}

// HandlePredict handles POST /api/data/predict. Unknown sector or region
// values are answered with 200 and an error flag.
func (h *Handler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[PredictRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.Predict(ctx, req.ToModel())
	if err != nil {
		h.logger.ErrorContext(ctx, "prediction failed",
			"request_id", requestID,
			"sector", req.Sector,
			"region", req.Region,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "prediction served",
		"request_id", requestID,
		"sector", req.Sector,
		"region", req.Region,
		"valid", result.Valid,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromPrediction(result))
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, view string, body any, err error) {
	ctx := r.Context()
	if err != nil {
		h.logger.ErrorContext(ctx, "view failed",
			"request_id", requestcontext.RequestID(ctx),
			"view", view,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, body)
}
