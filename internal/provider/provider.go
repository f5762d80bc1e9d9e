package provider

import (
	"context"
	"errors"
)

// ErrNoData signals that a provider reached its source but found no usable
// value this attempt (empty candles, missing field, market closed). It is
// retryable but distinct from a fault for logging purposes.
var ErrNoData = errors.New("no data available")

// Quote is a single fetched index value tagged with the provider that
// produced it. Immutable once returned.
type Quote struct {
	// Value is the index level, rounded to 2 decimal places.
	Value float64

	// Source is a stable human-readable identifier for the provider,
	// e.g. "yahoo-intraday" or "cboe". It is propagated into the output
	// payload for observability.
	Source string
}

// Provider is the core interface every data source adapter implements.
// Each provider knows how to retrieve the current index level from one
// external source; providers are independently substitutable so that the
// failure of one source never blocks construction of the others.
type Provider interface {
	// Fetch performs a single query against the source. It returns
	// ErrNoData (possibly wrapped) when the source responded but had no
	// usable value, and any other error on an unrecoverable local fault
	// (network error, malformed response).
	Fetch(ctx context.Context) (Quote, error)

	// Name returns the provider's stable source identifier.
	Name() string
}
