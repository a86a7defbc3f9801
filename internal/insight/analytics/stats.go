// Package analytics computes the derived dashboard views from raw records.
// Every function is pure: callers pass the full record set read from the
// store and receive a view ready for JSON encoding.
package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Round2 rounds half away from zero to two decimals.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// meanOf returns the rounded mean of xs, nil when xs is empty.
func meanOf(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	m := Round2(stat.Mean(xs, nil))
	return &m
}

// scoreColumns accumulates the numeric score fields of a group of records,
// skipping missing values per field.
type scoreColumns struct {
	intensity  []float64
	likelihood []float64
	relevance  []float64
}

func (c *scoreColumns) add(intensity, likelihood, relevance float64, hasI, hasL, hasR bool) {
	if hasI {
		c.intensity = append(c.intensity, intensity)
	}
	if hasL {
		c.likelihood = append(c.likelihood, likelihood)
	}
	if hasR {
		c.relevance = append(c.relevance, relevance)
	}
}
