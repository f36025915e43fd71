// Package simulate provides the stubbed backend every service call goes
// through: it logs the operation, waits a fixed delay and then either runs the
// in-memory mutation or reports a simulated failure.
package simulate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/conexao/internal/pkg/apperrors"
)

// Config tunes the simulated latency and failure rate.
type Config struct {
	Delay       time.Duration
	FailureRate float64
}

// Backend is safe for concurrent use.
type Backend struct {
	cfg    Config
	roll   func() float64
	logger zerolog.Logger
}

// NewBackend creates a Backend.
func NewBackend(cfg Config, logger zerolog.Logger) *Backend {
	return &Backend{
		cfg:    cfg,
		roll:   rand.Float64,
		logger: logger,
	}
}

// WithRoll replaces the random source, used by tests to force outcomes.
func (b *Backend) WithRoll(roll func() float64) *Backend {
	cp := *b
	cp.roll = roll
	return &cp
}

// Do waits for the configured delay, then runs fn unless the call is
// cancelled or the failure roll hits. fn may be nil for read-only calls.
func (b *Backend) Do(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	b.logger.Debug().Str("operation", operation).Msg("Simulated backend call started")

	if b.cfg.Delay > 0 {
		timer := time.NewTimer(b.cfg.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%s: %w", operation, ctx.Err())
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	if b.cfg.FailureRate > 0 && b.roll() < b.cfg.FailureRate {
		b.logger.Warn().Str("operation", operation).Dur("elapsed", time.Since(start)).Msg("Simulated backend failure")
		return fmt.Errorf("%s: %w", operation, apperrors.ErrSimulatedFailure)
	}

	if fn != nil {
		if err := fn(); err != nil {
			b.logger.Info().Err(err).Str("operation", operation).Msg("Simulated backend call rejected")
			return err
		}
	}

	b.logger.Info().Str("operation", operation).Dur("elapsed", time.Since(start)).Msg("Simulated backend call resolved")
	return nil
}
