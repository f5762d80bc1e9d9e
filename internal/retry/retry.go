package retry

import (
	"context"
	"log/slog"
	"time"

	"vixwatch/internal/provider"
)

const (
	// DefaultMaxAttempts is the per-provider attempt budget.
	DefaultMaxAttempts = 3
	// DefaultDelay is the fixed pause between attempts. No jitter, no
	// backoff: the cadence is deliberately simple.
	DefaultDelay = 2 * time.Second
)

// Retrier executes a single provider fetch with a bounded number of
// sequential attempts and a fixed inter-attempt delay. Faults and empty
// results both count as a failed attempt; neither ever escapes — after the
// budget is exhausted the Retrier reports absence, nothing more.
type Retrier struct {
	MaxAttempts int
	Delay       time.Duration
}

// New creates a Retrier, falling back to defaults for non-positive values.
func New(maxAttempts int, delay time.Duration) Retrier {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if delay < 0 {
		delay = DefaultDelay
	}
	return Retrier{MaxAttempts: maxAttempts, Delay: delay}
}

// Do calls p.Fetch up to MaxAttempts times, sleeping Delay between attempts
// but not after the final one. It returns the first successful quote, or
// ok=false once every attempt has failed or the context is done.
func (r Retrier) Do(ctx context.Context, p provider.Provider) (provider.Quote, bool) {
	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		quote, err := p.Fetch(ctx)
		if err == nil {
			return quote, true
		}

		slog.Warn("fetch attempt failed",
			"provider", p.Name(),
			"attempt", attempt,
			"max_attempts", r.MaxAttempts,
			"cause", err)

		if attempt < r.MaxAttempts {
			if !sleepCtx(ctx, r.Delay) {
				return provider.Quote{}, false
			}
		}
	}
	return provider.Quote{}, false
}

// sleepCtx pauses for d, returning false if ctx is done first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
