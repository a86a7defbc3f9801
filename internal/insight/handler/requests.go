package handler

import (
	"strings"

	"insightboard/internal/insight/models"
	dErrors "insightboard/pkg/domain-errors"
)

const maxLabelLength = 256

// PredictRequest is the HTTP request body for POST /api/data/predict.
// An empty body is accepted and predicts for the "Unknown" sector and region.
type PredictRequest struct {
	Sector string `json:"sector"`
	Region string `json:"region"`
}

// Validate normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *PredictRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.Sector) > maxLabelLength || len(r.Region) > maxLabelLength {
		return dErrors.New(dErrors.CodeBadRequest, "sector and region must be at most 256 characters")
	}

	if strings.TrimSpace(r.Sector) == "" {
		r.Sector = models.UnknownLabel
	}
	if strings.TrimSpace(r.Region) == "" {
		r.Region = models.UnknownLabel
	}
	return nil
}

// ToModel converts the validated request to the domain request.
func (r *PredictRequest) ToModel() models.PredictRequest {
	return models.PredictRequest{Sector: r.Sector, Region: r.Region}
}
