package handler

import "insightboard/internal/insight/models"

// InvalidPredictionMessage is returned when the sector or region was not seen
// in training.
const InvalidPredictionMessage = "Invalid sector or region value"

// PredictResponse is the HTTP response for POST /api/data/predict.
type PredictResponse struct {
	Error              string  `json:"error,omitempty"`
	PredictedIntensity float64 `json:"predicted_intensity"`
}

// FromPrediction converts a domain prediction to an HTTP response.
func FromPrediction(p models.Prediction) *PredictResponse {
	if !p.Valid {
		return &PredictResponse{Error: InvalidPredictionMessage}
	}
	return &PredictResponse{PredictedIntensity: p.Intensity}
}
