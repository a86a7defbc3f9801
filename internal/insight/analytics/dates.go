package analytics

import (
	"strings"
	"time"
)

// publishedLayouts are tried in order. The first one matches the format of the
// source dataset ("January, 20 2017 03:51:25").
var publishedLayouts = []string{
	"January, 2 2006 15:04:05",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	"1/2/2006 15:04:05",
	"1/2/2006",
}

// ParsePublished parses a publication date. Values without a zone are UTC.
func ParsePublished(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
