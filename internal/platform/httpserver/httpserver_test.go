package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	srv := New(":5000", http.NotFoundHandler(), 10*time.Second)

	assert.Equal(t, ":5000", srv.Addr)
	assert.Equal(t, 10*time.Second, srv.ReadTimeout)
	assert.Greater(t, srv.WriteTimeout, 10*time.Second)
	assert.Equal(t, 5*time.Second, srv.ReadHeaderTimeout)
}

func TestNewDefaultsTimeout(t *testing.T) {
	srv := New(":5000", http.NotFoundHandler(), 0)
	assert.Equal(t, 30*time.Second, srv.ReadTimeout)
}
