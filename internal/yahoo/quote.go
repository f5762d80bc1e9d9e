package yahoo

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"resty.dev/v3"

	"vixwatch/internal/provider"
	"vixwatch/internal/ratelimit"
)

// SourceQuote is the source identifier for the direct quote endpoint.
const SourceQuote = "yahoo-direct"

// QuoteResponse represents the Yahoo Finance v7 quote API response
type QuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol             string   `json:"symbol"`
			RegularMarketPrice *float64 `json:"regularMarketPrice"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// QuoteFetcher fetches the regular market price from the direct quote API.
// Secondary source: coarser than the chart endpoints but cheap and fast.
type QuoteFetcher struct {
	symbol string
	client *resty.Client
}

// NewQuoteFetcher creates a direct quote fetcher
func NewQuoteFetcher(symbol, baseURL string) *QuoteFetcher {
	return &QuoteFetcher{
		symbol: symbol,
		client: provider.NewHTTPClient(baseURL),
	}
}

// Fetch retrieves the current regular market price
func (f *QuoteFetcher) Fetch(ctx context.Context) (provider.Quote, error) {
	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APIYahoo); err != nil {
		return provider.Quote{}, err
	}

	var result QuoteResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("symbols", f.symbol).
		SetResult(&result).
		Get("/v7/finance/quote")

	if err != nil {
		return provider.Quote{}, provider.NewNetworkError(err)
	}

	// Non-200 from the quote endpoint means no data, not a fault.
	if !resp.IsSuccess() {
		slog.Debug("quote endpoint returned non-success status",
			"symbol", f.symbol, "status", resp.StatusCode())
		return provider.Quote{}, fmt.Errorf("quote status %d: %w", resp.StatusCode(), provider.ErrNoData)
	}

	if len(result.QuoteResponse.Result) == 0 || result.QuoteResponse.Result[0].RegularMarketPrice == nil {
		return provider.Quote{}, fmt.Errorf("regularMarketPrice for %s: %w", f.symbol, provider.ErrNoData)
	}

	price := *result.QuoteResponse.Result[0].RegularMarketPrice
	if math.IsNaN(price) {
		return provider.Quote{}, fmt.Errorf("regularMarketPrice for %s is NaN: %w", f.symbol, provider.ErrNoData)
	}

	return provider.Quote{
		Value:  math.Round(price*100) / 100,
		Source: SourceQuote,
	}, nil
}

// Name returns the stable source identifier
func (f *QuoteFetcher) Name() string {
	return SourceQuote
}
