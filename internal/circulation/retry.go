package circulation

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
)

const (
	defaultMaxAttempts  = 5
	defaultBaseDelay    = 10 * time.Millisecond
	defaultJitterFactor = 0.3
)

type retryConfig struct {
	maxAttempts  int
	baseDelay    time.Duration
	jitterFactor float64
}

// retryOnConflict runs fn until it succeeds, fails with anything other than a
// version conflict, or the attempts are used up. Delays double each time.
func retryOnConflict(ctx context.Context, cfg retryConfig, fn func(ctx context.Context) error) error {
	attempts := cfg.maxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(ctx)
		if err == nil || !errors.Is(err, repository.ErrConflict) {
			return err
		}
		if attempt == attempts {
			break
		}

		delay := cfg.baseDelay * time.Duration(1<<(attempt-1))
		if cfg.jitterFactor > 0 && delay > 0 {
			jitter := float64(delay) * cfg.jitterFactor * (rand.Float64()*2 - 1)
			delay += time.Duration(jitter)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
