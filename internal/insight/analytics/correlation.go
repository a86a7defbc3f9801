package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"insightboard/internal/insight/models"
)

// Correlation computes the Pearson matrix of the score fields using
// pairwise-complete observations. The diagonal is always 1; an off-diagonal
// entry is nil when fewer than two complete pairs exist or either side has
// zero variance.
func Correlation(records []models.Record) models.CorrelationMatrix {
	fields := models.NumericFields
	matrix := make(models.CorrelationMatrix, len(fields))
	for _, f := range fields {
		matrix[f] = make(map[string]*float64, len(fields))
	}

	for i, fi := range fields {
		one := 1.0
		matrix[fi][fi] = &one
		for _, fj := range fields[i+1:] {
			r := pairwise(records, fi, fj)
			matrix[fi][fj] = r
			matrix[fj][fi] = r
		}
	}
	return matrix
}

func pairwise(records []models.Record, a, b string) *float64 {
	xs := make([]float64, 0, len(records))
	ys := make([]float64, 0, len(records))
	for _, rec := range records {
		x, okX := rec.Float(a)
		y, okY := rec.Float(b)
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	if len(xs) < 2 || constant(xs) || constant(ys) {
		return nil
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil
	}
	r = math.Max(-1, math.Min(1, Round2(r)))
	return &r
}

func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
