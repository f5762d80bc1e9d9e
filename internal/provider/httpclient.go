package provider

import (
	"time"

	"resty.dev/v3"
)

const (
	// Per-request timeout. A hung request consumes a single retry attempt's
	// wall-clock budget rather than stalling the whole run.
	defaultRequestTimeout = 10 * time.Second
)

// NewHTTPClient creates a new HTTP client for a provider adapter.
// Client-level retries stay off: retrying is owned by the retry wrapper so
// that each provider's attempt budget is bounded in exactly one place.
func NewHTTPClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "vixwatch/1.0").
		SetTimeout(defaultRequestTimeout).
		SetRetryCount(0)
}
