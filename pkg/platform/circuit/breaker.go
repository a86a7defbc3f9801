// Package circuit wraps sony/gobreaker with the small surface the stores need:
// run a call, report failures, and fail fast while the circuit is open.
package circuit

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// ErrOpen is returned instead of calling through while the circuit is open or
// while the half-open probe quota is exhausted.
var ErrOpen = errors.New("circuit open")

// State is the breaker position.
type State string

const (
	StateClosed   State = "closed"
	StateHalfOpen State = "half-open"
	StateOpen     State = "open"
)

const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 30 * time.Second
)

type config struct {
	failureThreshold uint32
	openTimeout      time.Duration
	onStateChange    func(name string, from, to State)
}

// Option configures a Breaker.
type Option func(*config)

// WithFailureThreshold sets how many consecutive failures open the circuit.
func WithFailureThreshold(n uint32) Option {
	return func(c *config) {
		if n > 0 {
			c.failureThreshold = n
		}
	}
}

// WithOpenTimeout sets how long the circuit stays open before a probe is let through.
func WithOpenTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.openTimeout = d
		}
	}
}

// WithStateChange registers a callback for state transitions.
func WithStateChange(fn func(name string, from, to State)) Option {
	return func(c *config) {
		c.onStateChange = fn
	}
}

// Breaker guards calls to a dependency.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// New creates a closed breaker.
func New(name string, opts ...Option) *Breaker {
	cfg := config{
		failureThreshold: defaultFailureThreshold,
		openTimeout:      defaultOpenTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.failureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	if cfg.onStateChange != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			cfg.onStateChange(name, fromGobreaker(from), fromGobreaker(to))
		}
	}
	return &Breaker{cb: gobreaker.NewCircuitBreaker(settings)}
}

// Execute runs fn unless the circuit is open. Any error from fn counts as a
// failure; context cancellation by the caller does not.
func (b *Breaker) Execute(fn func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrOpen
	}
	return err
}

// Name returns the breaker name.
func (b *Breaker) Name() string { return b.cb.Name() }

// State returns the current position.
func (b *Breaker) State() State { return fromGobreaker(b.cb.State()) }

// IsOpen reports whether calls are currently rejected.
func (b *Breaker) IsOpen() bool { return b.State() == StateOpen }

func fromGobreaker(s gobreaker.State) State {
	switch s {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}
