package analytics

import (
	"insightboard/internal/insight/models"
	pstrings "insightboard/pkg/platform/strings"
)

// Filter returns the records matching every constraint of q, with score
// fields coerced. A constraint matches when the field's text contains the
// needle, ignoring case. The needle is taken literally.
func Filter(records []models.Record, q models.Query) []models.Record {
	constraints := q.Constraints()
	out := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if !matches(rec, constraints) {
			continue
		}
		out = append(out, NormalizeScores(rec))
	}
	return out
}

func matches(rec models.Record, constraints map[string]string) bool {
	for field, needle := range constraints {
		text, ok := rec.Get(field).Text()
		if !ok || !pstrings.ContainsFold(text, needle) {
			return false
		}
	}
	return true
}

// NormalizeScores returns a copy of rec whose present score fields are numbers,
// or null when coercion fails. Absent fields stay absent.
func NormalizeScores(rec models.Record) models.Record {
	out := rec.Clone()
	for _, field := range models.NumericFields {
		v := rec.Get(field)
		if v.IsMissing() {
			continue
		}
		if f, ok := v.Float(); ok {
			out[field] = models.Number(f)
		} else {
			out[field] = models.Null()
		}
	}
	return out
}
