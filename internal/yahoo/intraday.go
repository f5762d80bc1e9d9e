package yahoo

import (
	"context"

	"resty.dev/v3"

	"vixwatch/internal/provider"
)

// SourceIntraday is the source identifier for minute-resolution chart data.
const SourceIntraday = "yahoo-intraday"

// IntradayFetcher fetches the latest 1-minute close for the tracked symbol
// over the current day. Richest source, tried first.
type IntradayFetcher struct {
	symbol string
	client *resty.Client
}

// NewIntradayFetcher creates an intraday chart fetcher
func NewIntradayFetcher(symbol, baseURL string) *IntradayFetcher {
	return &IntradayFetcher{
		symbol: symbol,
		client: provider.NewHTTPClient(baseURL),
	}
}

// Fetch retrieves the most recent intraday close
func (f *IntradayFetcher) Fetch(ctx context.Context) (provider.Quote, error) {
	value, err := fetchChartClose(ctx, f.client, f.symbol, "1d", "1m")
	if err != nil {
		return provider.Quote{}, err
	}
	return provider.Quote{Value: value, Source: SourceIntraday}, nil
}

// Name returns the stable source identifier
func (f *IntradayFetcher) Name() string {
	return SourceIntraday
}
