package simulate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDoRunsFn(t *testing.T) {
	b := NewBackend(Config{}, logger.Nop())

	called := false
	err := b.Do(context.Background(), "test.ok", func() error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, b.Do(context.Background(), "test.read", nil))
}

func TestDoReturnsFnError(t *testing.T) {
	b := NewBackend(Config{}, logger.Nop())
	boom := errors.New("boom")

	err := b.Do(context.Background(), "test.err", func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestDoSimulatedFailureSkipsFn(t *testing.T) {
	b := NewBackend(Config{FailureRate: 0.5}, logger.Nop()).WithRoll(func() float64 { return 0.1 })

	err := b.Do(context.Background(), "favors.accept", func() error {
		t.Fatal("fn must not run on a failed roll")
		return nil
	})
	require.ErrorIs(t, err, apperrors.ErrSimulatedFailure)
	assert.Contains(t, err.Error(), "favors.accept")

	lucky := b.WithRoll(func() float64 { return 0.9 })
	assert.NoError(t, lucky.Do(context.Background(), "favors.accept", nil))
}

func TestDoWaitsForDelay(t *testing.T) {
	b := NewBackend(Config{Delay: 20 * time.Millisecond}, logger.Nop())

	start := time.Now()
	require.NoError(t, b.Do(context.Background(), "test.delay", nil))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDoHonoursCancellation(t *testing.T) {
	b := NewBackend(Config{Delay: time.Minute}, logger.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := b.Do(ctx, "test.slow", func() error {
		t.Fatal("fn must not run after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	err = NewBackend(Config{}, logger.Nop()).Do(cancelled, "test.cancelled", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
