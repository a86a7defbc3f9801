package analytics

import (
	"net/http"
	"sort"
	"time"

	"insightboard/internal/insight/models"
)

// RecentTrendsLimit is the number of records listed in Insights.RecentTrends.
const RecentTrendsLimit = 5

// Headline computes the dashboard summary over the full record set.
func Headline(records []models.Record) models.Insights {
	var intensities []float64
	maxLikelihood, seenLikelihood := 0.0, false
	for _, rec := range records {
		if f, ok := rec.Float(models.FieldIntensity); ok {
			intensities = append(intensities, f)
		}
		if f, ok := rec.Float(models.FieldLikelihood); ok {
			if !seenLikelihood || f > maxLikelihood {
				maxLikelihood = f
			}
			seenLikelihood = true
		}
	}

	return models.Insights{
		TotalRecords:  len(records),
		AvgIntensity:  meanOf(intensities),
		TopSector:     firstMode(records, models.FieldSector),
		TopRegion:     firstMode(records, models.FieldRegion),
		MaxLikelihood: maxLikelihood,
		RecentTrends:  recentTrends(records, RecentTrendsLimit),
	}
}

// firstMode returns the most frequent non-blank value of field. Ties go to the
// value encountered first in store order; "Unknown" when there is none.
func firstMode(records []models.Record, field string) string {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		v := rec.Get(field)
		if v.Blank() {
			continue
		}
		text, ok := v.Text()
		if !ok {
			continue
		}
		if _, seen := counts[text]; !seen {
			order = append(order, text)
		}
		counts[text]++
	}

	best, bestCount := models.UnknownLabel, 0
	for _, value := range order {
		if counts[value] > bestCount {
			best, bestCount = value, counts[value]
		}
	}
	return best
}

type datedRecord struct {
	rec       models.Record
	published time.Time
	parsed    bool
}

// recentTrends returns the n most recently published records. Records whose
// date does not parse sort after every dated record, keeping store order.
func recentTrends(records []models.Record, n int) []models.Trend {
	dated := make([]datedRecord, 0, len(records))
	for _, rec := range records {
		d := datedRecord{rec: rec}
		if text, ok := rec.Get(models.FieldPublished).Text(); ok {
			d.published, d.parsed = ParsePublished(text)
		}
		dated = append(dated, d)
	}

	sort.SliceStable(dated, func(a, b int) bool {
		if dated[a].parsed != dated[b].parsed {
			return dated[a].parsed
		}
		return dated[a].published.After(dated[b].published)
	})

	if len(dated) > n {
		dated = dated[:n]
	}
	trends := make([]models.Trend, 0, len(dated))
	for _, d := range dated {
		intensity, ok := d.rec.Float(models.FieldIntensity)
		if !ok {
			intensity = 0
		}
		trend := models.Trend{
			Topic:     d.rec.Label(models.FieldTopic, models.UnknownLabel),
			Intensity: intensity,
		}
		if d.parsed {
			published := d.published.Format(http.TimeFormat)
			trend.Published = &published
		}
		trends = append(trends, trend)
	}
	return trends
}
