package analytics

import (
	"sort"

	"insightboard/internal/insight/models"
)

// SectorImpacts groups records by sector (blank sectors become "Unknown"),
// dropping records whose three scores are all missing, and reports the
// rounded mean of each score and the group size. Entries are sorted by sector.
func SectorImpacts(records []models.Record) []models.SectorImpact {
	groups := make(map[string]*scoreColumns)
	counts := make(map[string]int)

	for _, rec := range records {
		i, hasI := rec.Float(models.FieldIntensity)
		l, hasL := rec.Float(models.FieldLikelihood)
		r, hasR := rec.Float(models.FieldRelevance)
		if !hasI && !hasL && !hasR {
			continue
		}
		sector := rec.Label(models.FieldSector, models.UnknownLabel)
		cols, ok := groups[sector]
		if !ok {
			cols = &scoreColumns{}
			groups[sector] = cols
		}
		cols.add(i, l, r, hasI, hasL, hasR)
		counts[sector]++
	}

	out := make([]models.SectorImpact, 0, len(groups))
	for sector, cols := range groups {
		out = append(out, models.SectorImpact{
			Sector:     sector,
			Intensity:  meanOf(cols.intensity),
			Likelihood: meanOf(cols.likelihood),
			Relevance:  meanOf(cols.relevance),
			Count:      counts[sector],
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Sector < out[b].Sector })
	return out
}
