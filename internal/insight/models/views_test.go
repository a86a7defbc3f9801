package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryConstraints(t *testing.T) {
	q := QueryFromValues(url.Values{
		"region": {"Africa"},
		"topic":  {"  "},
		"sector": {"Energy"},
		"other":  {"ignored"},
	})

	assert.Equal(t, map[string]string{"region": "Africa", "sector": "Energy"}, q.Constraints())
	assert.False(t, q.IsEmpty())
	assert.Equal(t, "region=Africa&sector=Energy", q.Key())
}

func TestQueryEmpty(t *testing.T) {
	q := QueryFromValues(url.Values{})
	assert.True(t, q.IsEmpty())
	assert.Empty(t, q.Key())
}
