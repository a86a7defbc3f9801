package analytics

import (
	"fmt"

	"insightboard/internal/insight/models"
)

// rec builds a record from alternating field/value pairs. Go strings become
// String values, numbers become Number values, nil becomes Null.
func rec(kv ...any) models.Record {
	r := models.Record{}
	for i := 0; i+1 < len(kv); i += 2 {
		field := kv[i].(string)
		switch v := kv[i+1].(type) {
		case nil:
			r[field] = models.Null()
		case string:
			r[field] = models.String(v)
		case int:
			r[field] = models.Number(float64(v))
		case float64:
			r[field] = models.Number(v)
		default:
			panic(fmt.Sprintf("unsupported fixture value %T", v))
		}
	}
	return r
}

func sampleRecords() []models.Record {
	return []models.Record{
		rec("end_year", 2027, "topic", "oil", "sector", "Energy", "region", "Northern Africa",
			"pestle", "Industries", "source", "EIA", "country", "Algeria",
			"intensity", 6, "likelihood", 3, "relevance", 2, "published", "January, 20 2017 03:51:25"),
		rec("end_year", "", "topic", "gas", "sector", "Energy", "region", "Western Asia",
			"pestle", "Economic", "source", "Reuters", "country", "",
			"intensity", "12", "likelihood", "4", "relevance", "3", "published", "February, 02 2017 00:00:00"),
		rec("end_year", "2030", "topic", "growth", "sector", "", "region", "World",
			"pestle", "Economic", "source", "EIA",
			"intensity", "", "likelihood", 2, "relevance", "x", "published", "not a date"),
		rec("topic", "", "sector", "Retail", "region", "Asia",
			"intensity", 4, "likelihood", 1, "relevance", 1, "published", "March, 05 2016 10:00:00"),
	}
}

func ptr(f float64) *float64 { return &f }
