package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"vixwatch/internal/provider"
	"vixwatch/internal/retry"
)

// ErrAllSourcesFailed is the terminal error raised when every provider in
// the chain has exhausted its retry budget. Individual provider failures are
// logged where they happen and are not enumerated here.
var ErrAllSourcesFailed = errors.New("all sources failed")

// Chain tries providers strictly in priority order, each through the retry
// wrapper, and stops at the first one that yields a value. Ordering reflects
// a data quality/latency tradeoff: richest intraday source first, coarser
// fallbacks after. Each provider gets its own retry budget so a transient
// blip on one source never eats into the next one's attempts.
type Chain struct {
	providers []provider.Provider
	retrier   retry.Retrier
}

// New creates a Chain over the given providers in priority order
func New(retrier retry.Retrier, providers []provider.Provider) *Chain {
	return &Chain{
		providers: providers,
		retrier:   retrier,
	}
}

// FetchValue returns the first value any provider yields, tagged with that
// provider's source identifier. Providers are tried one at a time, never
// concurrently. Returns ErrAllSourcesFailed once the whole chain is
// exhausted.
func (c *Chain) FetchValue(ctx context.Context) (float64, string, error) {
	if len(c.providers) == 0 {
		return 0, "", fmt.Errorf("no providers configured")
	}

	for _, p := range c.providers {
		quote, ok := c.retrier.Do(ctx, p)
		if ok {
			slog.Info("fetched index value",
				"source", quote.Source,
				"value", quote.Value)
			return quote.Value, quote.Source, nil
		}
		slog.Warn("provider exhausted, falling back", "provider", p.Name())
	}

	return 0, "", ErrAllSourcesFailed
}
