package store

import (
	"context"
	"errors"
	"fmt"

	"insightboard/internal/insight/models"
	"insightboard/pkg/platform/circuit"
	"insightboard/pkg/platform/sentinel"
)

// Guarded wraps a Store with a circuit breaker. While the circuit is open,
// calls fail immediately with sentinel.ErrUnavailable.
type Guarded struct {
	next    Store
	breaker *circuit.Breaker
}

// NewGuarded decorates next with breaker.
func NewGuarded(next Store, breaker *circuit.Breaker) *Guarded {
	return &Guarded{next: next, breaker: breaker}
}

func (g *Guarded) List(ctx context.Context) ([]models.Record, error) {
	var records []models.Record
	err := g.run(func() error {
		var err error
		records, err = g.next.List(ctx)
		return err
	})
	return records, err
}

func (g *Guarded) Replace(ctx context.Context, records []models.Record) error {
	return g.run(func() error {
		return g.next.Replace(ctx, records)
	})
}

func (g *Guarded) Count(ctx context.Context) (int, error) {
	var n int
	err := g.run(func() error {
		var err error
		n, err = g.next.Count(ctx)
		return err
	})
	return n, err
}

func (g *Guarded) Ping(ctx context.Context) error {
	return g.run(func() error {
		return g.next.Ping(ctx)
	})
}

func (g *Guarded) run(fn func() error) error {
	err := g.breaker.Execute(fn)
	if errors.Is(err, circuit.ErrOpen) {
		return fmt.Errorf("%s store: %w", g.breaker.Name(), sentinel.ErrUnavailable)
	}
	return err
}
