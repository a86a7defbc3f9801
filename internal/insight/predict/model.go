// Package predict fits the intensity regression used by the prediction
// endpoint. A model is trained from the full record set on every request and
// discarded afterwards.
//
// Sector and region are label-encoded into ordinal codes and used directly as
// regressors. The ordering implies distances between categories that do not
// exist; the encoding is kept for compatibility with existing clients.
package predict

import (
	"fmt"

	"insightboard/internal/insight/analytics"
	"insightboard/internal/insight/models"
)

// Model is a fitted regression of intensity on the encoded sector and region.
type Model struct {
	sectors labelEncoder
	regions labelEncoder
	linear  linearModel
	fitted  bool
}

// Train fits a model from records. Records without a numeric intensity are
// skipped and blank sector or region labels become "Unknown". With no usable
// record the model has an empty vocabulary, so every prediction is invalid.
func Train(records []models.Record) (*Model, error) {
	var sectors, regions []string
	var y []float64
	for _, rec := range records {
		intensity, ok := rec.Float(models.FieldIntensity)
		if !ok {
			continue
		}
		sectors = append(sectors, rec.Label(models.FieldSector, models.UnknownLabel))
		regions = append(regions, rec.Label(models.FieldRegion, models.UnknownLabel))
		y = append(y, intensity)
	}

	m := &Model{
		sectors: newLabelEncoder(sectors),
		regions: newLabelEncoder(regions),
	}
	if len(y) == 0 {
		return m, nil
	}

	rows := make([][]float64, len(y))
	for i := range y {
		s, _ := m.sectors.encode(sectors[i])
		r, _ := m.regions.encode(regions[i])
		rows[i] = []float64{s, r}
	}
	linear, err := fitLinear(rows, y)
	if err != nil {
		return nil, fmt.Errorf("fit intensity model on %d records: %w", len(y), err)
	}
	m.linear = linear
	m.fitted = true
	return m, nil
}

// Predict encodes the request with the training vocabulary and returns the
// predicted intensity rounded to two decimals. Unseen labels yield an invalid
// prediction with intensity 0.
func (m *Model) Predict(req models.PredictRequest) models.Prediction {
	if m == nil || !m.fitted {
		return models.Prediction{}
	}
	s, okS := m.sectors.encode(req.Sector)
	r, okR := m.regions.encode(req.Region)
	if !okS || !okR {
		return models.Prediction{}
	}
	return models.Prediction{
		Intensity: analytics.Round2(m.linear.predict([]float64{s, r})),
		Valid:     true,
	}
}

// Vocabulary reports the number of distinct sectors and regions seen in training.
func (m *Model) Vocabulary() (sectors, regions int) {
	return m.sectors.size(), m.regions.size()
}
