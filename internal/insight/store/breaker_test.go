package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightboard/internal/insight/models"
	"insightboard/pkg/platform/circuit"
	"insightboard/pkg/platform/sentinel"
)

type flakyStore struct {
	InMemoryStore
	err   error
	calls int
}

func (f *flakyStore) List(ctx context.Context) ([]models.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.InMemoryStore.List(ctx)
}

func TestGuarded_PassesThroughWhileClosed(t *testing.T) {
	inner := &flakyStore{}
	require.NoError(t, inner.Replace(context.Background(), []models.Record{sample("oil", 6)}))
	g := NewGuarded(inner, circuit.New("mongo"))

	got, err := g.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	n, err := g.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGuarded_FailsFastWhenOpen(t *testing.T) {
	boom := errors.New("connection refused")
	inner := &flakyStore{err: boom}
	g := NewGuarded(inner, circuit.New("mongo", circuit.WithFailureThreshold(2)))

	_, err := g.List(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = g.List(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = g.List(context.Background())
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	assert.Contains(t, err.Error(), "mongo")
	assert.Equal(t, 2, inner.calls)
}
