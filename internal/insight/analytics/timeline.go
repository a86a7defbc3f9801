package analytics

import (
	"sort"

	"insightboard/internal/insight/models"
)

type yearGroup struct {
	endYear models.Value
	scores  scoreColumns
	topics  int
}

// TimeAnalysis groups records by their raw end_year value. Values of different
// kinds stay apart ("2027" vs 2027); absent and null share the missing group.
// Each entry carries the rounded score means and the number of records with a
// topic.
func TimeAnalysis(records []models.Record) []models.YearSummary {
	groups := make(map[string]*yearGroup)
	for _, rec := range records {
		year := rec.Get(models.FieldEndYear)
		if year.Kind() == models.KindNull {
			year = models.Value{}
		}
		g, ok := groups[year.Key()]
		if !ok {
			g = &yearGroup{endYear: year}
			groups[year.Key()] = g
		}

		i, hasI := rec.Float(models.FieldIntensity)
		l, hasL := rec.Float(models.FieldLikelihood)
		r, hasR := rec.Float(models.FieldRelevance)
		g.scores.add(i, l, r, hasI, hasL, hasR)
		if !rec.Get(models.FieldTopic).Blank() {
			g.topics++
		}
	}

	ordered := make([]*yearGroup, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(a, b int) bool {
		return yearLess(ordered[a].endYear, ordered[b].endYear)
	})

	out := make([]models.YearSummary, 0, len(ordered))
	for _, g := range ordered {
		out = append(out, models.YearSummary{
			EndYear:    g.endYear,
			Intensity:  meanOf(g.scores.intensity),
			Likelihood: meanOf(g.scores.likelihood),
			Relevance:  meanOf(g.scores.relevance),
			Topic:      g.topics,
		})
	}
	return out
}

// yearLess orders missing first, then numbers ascending, then strings, then
// any other JSON value by its text.
func yearLess(a, b models.Value) bool {
	ra, rb := kindRank(a.Kind()), kindRank(b.Kind())
	if ra != rb {
		return ra < rb
	}
	if a.Kind() == models.KindNumber {
		fa, _ := a.Float()
		fb, _ := b.Float()
		return fa < fb
	}
	return a.Key() < b.Key()
}

func kindRank(k models.Kind) int {
	switch k {
	case models.KindMissing, models.KindNull:
		return 0
	case models.KindNumber:
		return 1
	case models.KindString:
		return 2
	default:
		return 3
	}
}
