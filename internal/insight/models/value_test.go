package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueFloat(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   float64
		wantOK bool
	}{
		{"number", Number(6), 6, true},
		{"numeric string", String(" 3.5 "), 3.5, true},
		{"empty string", String(""), 0, false},
		{"text", String("high"), 0, false},
		{"nan string", String("NaN"), 0, false},
		{"null", Null(), 0, false},
		{"missing", Value{}, 0, false},
		{"bool", Raw([]byte("true")), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Float()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueText(t *testing.T) {
	s, ok := Number(2027).Text()
	assert.True(t, ok)
	assert.Equal(t, "2027", s)

	s, ok = Number(0.25).Text()
	assert.True(t, ok)
	assert.Equal(t, "0.25", s)

	_, ok = Null().Text()
	assert.False(t, ok)
}

func TestValueBlank(t *testing.T) {
	assert.True(t, Value{}.Blank())
	assert.True(t, Null().Blank())
	assert.True(t, String("  ").Blank())
	assert.False(t, String("Energy").Blank())
	assert.False(t, Number(0).Blank())
}

func TestValueKeyDistinguishesKinds(t *testing.T) {
	assert.NotEqual(t, String("2027").Key(), Number(2027).Key())
	assert.NotEqual(t, String("").Key(), Value{}.Key())
	assert.NotEqual(t, Null().Key(), Value{}.Key())
	assert.Equal(t, Number(2027).Key(), Number(2027.0).Key())
}

func TestRecordJSON(t *testing.T) {
	input := `{"end_year":2027,"topic":"oil","intensity":"6","likelihood":null,"impact":"","tags":["a"],"flag":true}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(input), &rec))

	assert.Equal(t, KindNumber, rec.Get("end_year").Kind())
	assert.Equal(t, KindString, rec.Get("intensity").Kind())
	assert.Equal(t, KindNull, rec.Get("likelihood").Kind())
	assert.Equal(t, KindRaw, rec.Get("tags").Kind())
	assert.True(t, rec.Get("relevance").IsMissing())

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestRecordRejectsNonObject(t *testing.T) {
	var rec Record
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &rec))
	assert.Error(t, json.Unmarshal([]byte(`null`), &rec))
}

func TestRecordMarshalOmitsMissing(t *testing.T) {
	rec := Record{"topic": String("gas"), "sector": Value{}}
	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"topic":"gas"}`, string(out))
}

func TestRecordLabel(t *testing.T) {
	rec := Record{"sector": String(""), "region": String("Asia"), "end_year": Number(2030)}
	assert.Equal(t, UnknownLabel, rec.Label("sector", UnknownLabel))
	assert.Equal(t, "Asia", rec.Label("region", UnknownLabel))
	assert.Equal(t, "2030", rec.Label("end_year", UnknownLabel))
	assert.Equal(t, UnknownLabel, rec.Label("country", UnknownLabel))
}
