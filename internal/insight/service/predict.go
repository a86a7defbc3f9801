package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"insightboard/internal/insight/models"
	"insightboard/internal/insight/predict"
	dErrors "insightboard/pkg/domain-errors"
)

// Predict retrains the intensity model on the current record set and scores
// req. Unseen sector or region values produce an invalid prediction, not an
// error.
func (s *Service) Predict(ctx context.Context, req models.PredictRequest) (models.Prediction, error) {
	ctx, span := s.tracer.Start(ctx, "insight."+ViewPredict)
	defer span.End()

	records, err := s.listRecords(ctx)
	if err != nil {
		s.metrics.IncrementPrediction("error")
		span.RecordError(err)
		span.SetStatus(codes.Error, "list records")
		return models.Prediction{}, err
	}

	model, err := predict.Train(records)
	if err != nil {
		s.metrics.IncrementPrediction("error")
		span.RecordError(err)
		span.SetStatus(codes.Error, "train")
		return models.Prediction{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to train prediction model")
	}

	result := model.Predict(req)
	span.SetAttributes(
		attribute.Int("insight.records", len(records)),
		attribute.Bool("insight.prediction_valid", result.Valid),
	)
	if result.Valid {
		s.metrics.IncrementPrediction("ok")
	} else {
		s.metrics.IncrementPrediction("invalid")
	}
	return result, nil
}
