// Package models defines the insight record and the derived views computed
// over collections of records.
package models

import (
	"encoding/json"
	"fmt"
)

// Field names used by the analytics pipeline.
const (
	FieldEndYear    = "end_year"
	FieldTopic      = "topic"
	FieldSector     = "sector"
	FieldRegion     = "region"
	FieldPestle     = "pestle"
	FieldSource     = "source"
	FieldCountry    = "country"
	FieldIntensity  = "intensity"
	FieldLikelihood = "likelihood"
	FieldRelevance  = "relevance"
	FieldPublished  = "published"
)

// NumericFields are the score fields coerced to numbers.
var NumericFields = []string{FieldIntensity, FieldLikelihood, FieldRelevance}

// UnknownLabel replaces missing categorical values in grouped views.
const UnknownLabel = "Unknown"

// Record is one schemaless data-insight document.
type Record map[string]Value

// Get returns the field value, Missing when absent.
func (r Record) Get(field string) Value {
	return r[field]
}

// Float coerces a field to a number.
func (r Record) Float(field string) (float64, bool) {
	return r[field].Float()
}

// Label returns the field's text, or fallback when the field is blank.
func (r Record) Label(field, fallback string) string {
	v := r[field]
	if v.Blank() {
		return fallback
	}
	if s, ok := v.Text(); ok {
		return s
	}
	return fallback
}

// Clone returns a shallow copy; Values are immutable so this is sufficient.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// MarshalJSON omits missing fields and writes null for explicit nulls.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]Value, len(r))
	for k, v := range r {
		if v.IsMissing() {
			continue
		}
		out[k] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts any JSON object.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if fields == nil {
		return fmt.Errorf("decode record: not an object")
	}
	rec := make(Record, len(fields))
	for k, raw := range fields {
		rec[k] = parseValue(raw)
	}
	*r = rec
	return nil
}
