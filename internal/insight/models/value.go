package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindMissing Kind = iota
	KindNull
	KindString
	KindNumber
	// KindRaw holds any other JSON value (bool, object, array) verbatim.
	KindRaw
)

// Value is one field of a Record. The zero Value is Missing.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Null returns an explicit JSON null.
func Null() Value { return Value{kind: KindNull} }

// String wraps a text value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Raw wraps an arbitrary JSON document. Invalid JSON yields Missing.
func Raw(b []byte) Value {
	b = bytes.TrimSpace(b)
	if !json.Valid(b) {
		return Value{}
	}
	return Value{kind: KindRaw, str: string(b)}
}

func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the field was absent.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Blank reports whether the value carries no usable content: absent, null, or
// a whitespace-only string.
func (v Value) Blank() bool {
	switch v.kind {
	case KindMissing, KindNull:
		return true
	case KindString:
		return strings.TrimSpace(v.str) == ""
	default:
		return false
	}
}

// Text returns the textual form of string and number values. Numbers use the
// shortest representation that round-trips, so 2027 becomes "2027".
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Float coerces the value to a finite number. Strings are trimmed and parsed;
// anything unparseable, non-finite, or non-scalar is reported as missing.
func (v Value) Float() (float64, bool) {
	var f float64
	switch v.kind {
	case KindNumber:
		f = v.num
	case KindString:
		s := strings.TrimSpace(v.str)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Interface returns the plain Go form used by drivers: nil, string, float64,
// or the decoded raw document.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindRaw:
		var out any
		if err := json.Unmarshal([]byte(v.str), &out); err != nil {
			return nil
		}
		return out
	default:
		return nil
	}
}

// Key identifies the value for grouping. Values with different kinds never
// share a key, so "2027" and 2027 form distinct groups.
func (v Value) Key() string {
	switch v.kind {
	case KindString:
		return "s:" + v.str
	case KindNumber:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindRaw:
		return "r:" + v.str
	case KindNull:
		return "null"
	default:
		return "missing"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.num)
	case KindRaw:
		return []byte(v.str), nil
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	*v = parseValue(data)
	return nil
}

func parseValue(data []byte) Value {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Value{}
	}
	switch c := data[0]; {
	case c == 'n':
		return Null()
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Value{}
		}
		return String(s)
	case c == '-' || (c >= '0' && c <= '9'):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return Raw(data)
		}
		return Number(f)
	default:
		return Raw(data)
	}
}
