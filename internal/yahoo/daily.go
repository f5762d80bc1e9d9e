package yahoo

import (
	"context"

	"resty.dev/v3"

	"vixwatch/internal/provider"
)

// SourceDaily is the source identifier for daily-history chart data.
const SourceDaily = "yahoo-daily"

// DailyFetcher fetches the most recent of the last 5 daily closes. Used when
// intraday data is absent, e.g. market closed or a provider gap.
type DailyFetcher struct {
	symbol string
	client *resty.Client
}

// NewDailyFetcher creates a daily history fetcher
func NewDailyFetcher(symbol, baseURL string) *DailyFetcher {
	return &DailyFetcher{
		symbol: symbol,
		client: provider.NewHTTPClient(baseURL),
	}
}

// Fetch retrieves the most recent daily close
func (f *DailyFetcher) Fetch(ctx context.Context) (provider.Quote, error) {
	value, err := fetchChartClose(ctx, f.client, f.symbol, "5d", "1d")
	if err != nil {
		return provider.Quote{}, err
	}
	return provider.Quote{Value: value, Source: SourceDaily}, nil
}

// Name returns the stable source identifier
func (f *DailyFetcher) Name() string {
	return SourceDaily
}
