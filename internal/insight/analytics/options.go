package analytics

import (
	"insightboard/internal/insight/models"
	pstrings "insightboard/pkg/platform/strings"
)

// Options lists the distinct, non-blank values of each filter field, sorted.
func Options(records []models.Record) models.FilterOptions {
	return models.FilterOptions{
		EndYears:  distinct(records, models.FieldEndYear),
		Topics:    distinct(records, models.FieldTopic),
		Sectors:   distinct(records, models.FieldSector),
		Regions:   distinct(records, models.FieldRegion),
		Pestles:   distinct(records, models.FieldPestle),
		Sources:   distinct(records, models.FieldSource),
		Countries: distinct(records, models.FieldCountry),
	}
}

func distinct(records []models.Record, field string) []string {
	values := make([]string, 0, len(records))
	for _, rec := range records {
		if text, ok := rec.Get(field).Text(); ok {
			values = append(values, text)
		}
	}
	return pstrings.SortedDistinct(values)
}
