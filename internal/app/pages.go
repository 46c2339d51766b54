package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/five82/shiki/internal/jikan"
	"github.com/five82/shiki/internal/state"
)

const (
	defaultRetryBase = 2 * time.Second
	maxBackoff       = 30 * time.Second
	maxRetries       = 3
)

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

// loadPages walks the listing through loader until pages pages are merged or
// the source has no more. Rate-limited requests are retried with backoff;
// any other error stops the walk.
func loadPages(ctx context.Context, loader *state.Loader, pages int, base time.Duration, logger *slog.Logger) error {
	if base <= 0 {
		base = defaultRetryBase
	}
	failures := 0
	for loaded := 0; loaded < pages; {
		err := loader.LoadMore(ctx)
		switch {
		case err == nil:
			loaded++
			failures = 0
			continue
		case errors.Is(err, state.ErrExhausted):
			return nil
		case errors.Is(err, jikan.ErrRateLimited) && failures < maxRetries:
		default:
			return err
		}

		failures++
		wait := calculateBackoff(failures, base)
		logger.Warn("rate limited, backing off", "attempt", failures, "wait", wait)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
