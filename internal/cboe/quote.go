package cboe

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"

	"resty.dev/v3"

	"vixwatch/internal/provider"
	"vixwatch/internal/ratelimit"
)

// Source is the source identifier for the exchange's own quote API.
const Source = "cboe"

// QuoteResponse represents the Cboe delayed-quote API response
type QuoteResponse struct {
	Data []struct {
		Symbol   string   `json:"symbol"`
		LastSale *float64 `json:"lastSale"`
	} `json:"data"`
}

// QuoteFetcher fetches the last sale for an index from Cboe's delayed-quote
// endpoint. Tertiary source, tried when everything upstream came up empty.
type QuoteFetcher struct {
	symbol string
	client *resty.Client
}

// NewQuoteFetcher creates a Cboe index quote fetcher
func NewQuoteFetcher(symbol, baseURL string) *QuoteFetcher {
	return &QuoteFetcher{
		symbol: symbol,
		client: provider.NewHTTPClient(baseURL),
	}
}

// Fetch retrieves the index's last sale
func (f *QuoteFetcher) Fetch(ctx context.Context) (provider.Quote, error) {
	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APICboe); err != nil {
		return provider.Quote{}, err
	}

	var result QuoteResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/global/delayed_quotes/quotes/" + url.PathEscape(f.symbol) + ".json")

	if err != nil {
		return provider.Quote{}, provider.NewNetworkError(err)
	}

	// Non-200 from the exchange means no data, not a fault.
	if !resp.IsSuccess() {
		slog.Debug("cboe endpoint returned non-success status",
			"symbol", f.symbol, "status", resp.StatusCode())
		return provider.Quote{}, fmt.Errorf("cboe status %d: %w", resp.StatusCode(), provider.ErrNoData)
	}

	if len(result.Data) == 0 || result.Data[0].LastSale == nil {
		return provider.Quote{}, fmt.Errorf("lastSale for %s: %w", f.symbol, provider.ErrNoData)
	}

	sale := *result.Data[0].LastSale
	if math.IsNaN(sale) {
		return provider.Quote{}, fmt.Errorf("lastSale for %s is NaN: %w", f.symbol, provider.ErrNoData)
	}

	return provider.Quote{
		Value:  math.Round(sale*100) / 100,
		Source: Source,
	}, nil
}

// Name returns the stable source identifier
func (f *QuoteFetcher) Name() string {
	return Source
}
