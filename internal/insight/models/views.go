package models

import (
	"net/url"
	"strings"
)

// Query holds the optional containment filters of the dashboard view.
type Query struct {
	EndYear string
	Topic   string
	Sector  string
	Region  string
	Pestle  string
}

// QueryFields lists the filterable fields in query-parameter order.
var QueryFields = []string{FieldEndYear, FieldTopic, FieldSector, FieldRegion, FieldPestle}

// QueryFromValues reads the filter parameters from URL query values.
func QueryFromValues(values url.Values) Query {
	return Query{
		EndYear: values.Get(FieldEndYear),
		Topic:   values.Get(FieldTopic),
		Sector:  values.Get(FieldSector),
		Region:  values.Get(FieldRegion),
		Pestle:  values.Get(FieldPestle),
	}
}

// Constraints returns field -> needle for every non-blank parameter.
func (q Query) Constraints() map[string]string {
	out := make(map[string]string, len(QueryFields))
	for field, value := range map[string]string{
		FieldEndYear: q.EndYear,
		FieldTopic:   q.Topic,
		FieldSector:  q.Sector,
		FieldRegion:  q.Region,
		FieldPestle:  q.Pestle,
	} {
		if strings.TrimSpace(value) != "" {
			out[field] = value
		}
	}
	return out
}

// IsEmpty reports whether the query imposes no constraint.
func (q Query) IsEmpty() bool {
	return len(q.Constraints()) == 0
}

// Key is a stable encoding of the active constraints, used as a cache key.
func (q Query) Key() string {
	values := url.Values{}
	for field, value := range q.Constraints() {
		values.Set(field, value)
	}
	return values.Encode()
}

// FilterOptions lists the distinct values offered by each dashboard filter.
type FilterOptions struct {
	EndYears  []string `json:"end_years"`
	Topics    []string `json:"topics"`
	Sectors   []string `json:"sectors"`
	Regions   []string `json:"regions"`
	Pestles   []string `json:"pestles"`
	Sources   []string `json:"sources"`
	Countries []string `json:"countries"`
}

// CorrelationMatrix maps field -> field -> Pearson coefficient. A nil entry
// means the coefficient is undefined for the available data.
type CorrelationMatrix map[string]map[string]*float64

// SectorImpact summarizes the scores of one sector.
type SectorImpact struct {
	Sector     string   `json:"sector"`
	Intensity  *float64 `json:"intensity"`
	Likelihood *float64 `json:"likelihood"`
	Relevance  *float64 `json:"relevance"`
	Count      int      `json:"count"`
}

// Trend is one of the most recently published records.
type Trend struct {
	Topic     string  `json:"topic"`
	Intensity float64 `json:"intensity"`
	Published *string `json:"published"`
}

// Insights are the headline numbers of the dashboard.
type Insights struct {
	TotalRecords  int      `json:"total_records"`
	AvgIntensity  *float64 `json:"avg_intensity"`
	TopSector     string   `json:"top_sector"`
	TopRegion     string   `json:"top_region"`
	MaxLikelihood float64  `json:"max_likelihood"`
	RecentTrends  []Trend  `json:"recent_trends"`
}

// YearSummary aggregates the records sharing one raw end_year value.
type YearSummary struct {
	EndYear    Value    `json:"end_year"`
	Intensity  *float64 `json:"intensity"`
	Likelihood *float64 `json:"likelihood"`
	Relevance  *float64 `json:"relevance"`
	Topic      int      `json:"topic"`
}

// PredictRequest selects the categorical inputs of an intensity prediction.
type PredictRequest struct {
	Sector string
	Region string
}

// Prediction is the outcome of one retrain-and-predict pass. Valid is false
// when either input was not seen during training.
type Prediction struct {
	Intensity float64
	Valid     bool
}
