package circuit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func fail() error { return errBoom }
func succeed() error { return nil }

func TestBreaker_InitialState(t *testing.T) {
	b := New("test")
	assert.False(t, b.IsOpen())
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, "test", b.Name())
}

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := New("test", WithFailureThreshold(3))

	// First two failures don't open
	assert.ErrorIs(t, b.Execute(fail), errBoom)
	assert.ErrorIs(t, b.Execute(fail), errBoom)
	assert.False(t, b.IsOpen())

	// Third failure opens the circuit
	assert.ErrorIs(t, b.Execute(fail), errBoom)
	assert.True(t, b.IsOpen())

	called := false
	err := b.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := New("test", WithFailureThreshold(3))

	_ = b.Execute(fail)
	_ = b.Execute(fail)
	require.NoError(t, b.Execute(succeed))

	_ = b.Execute(fail)
	_ = b.Execute(fail)
	assert.False(t, b.IsOpen())

	_ = b.Execute(fail)
	assert.True(t, b.IsOpen())
}

func TestBreaker_ClosesAfterSuccessfulProbe(t *testing.T) {
	var transitions []State
	b := New("test",
		WithFailureThreshold(1),
		WithOpenTimeout(20*time.Millisecond),
		WithStateChange(func(_ string, _, to State) { transitions = append(transitions, to) }),
	)

	_ = b.Execute(fail)
	require.True(t, b.IsOpen())

	require.Eventually(t, func() bool { return b.State() == StateHalfOpen }, time.Second, 5*time.Millisecond)
	require.NoError(t, b.Execute(succeed))
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateClosed}, transitions)
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	b := New("test", WithFailureThreshold(1), WithOpenTimeout(20*time.Millisecond))

	_ = b.Execute(fail)
	require.Eventually(t, func() bool { return b.State() == StateHalfOpen }, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, b.Execute(fail), errBoom)
	assert.True(t, b.IsOpen())
}

func TestBreaker_CallerCancellationIsNotAFailure(t *testing.T) {
	b := New("test", WithFailureThreshold(1))

	err := b.Execute(func() error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, b.IsOpen())
}
