package yahoo

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

// ChartResponse represents the Yahoo Finance chart API response
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// lastClose returns the most recent non-missing close in the response,
// or false if the response carries no usable candle.
func (r *ChartResponse) lastClose() (float64, bool) {
	if len(r.Chart.Result) == 0 || len(r.Chart.Result[0].Indicators.Quote) == 0 {
		return 0, false
	}
	closes := r.Chart.Result[0].Indicators.Quote[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != nil && !math.IsNaN(*closes[i]) {
			return *closes[i], true
		}
	}
	return 0, false
}

// fetchChartClose queries the chart endpoint for the given range/interval
// and extracts the latest close, rounded to 2 decimal places.
func fetchChartClose(ctx context.Context, client *resty.Client, symbol, dataRange, interval string) (float64, error) {
	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APIYahoo); err != nil {
		return 0, err
	}

	var result ChartResponse

	resp, err := client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    dataRange,
			"interval": interval,
		}).
		SetResult(&result).
		Get("/v8/finance/chart/" + url.PathEscape(symbol))

	if err != nil {
		return 0, provider.NewNetworkError(err)
	}

	if !resp.IsSuccess() {
		return 0, provider.NewServerError(resp.StatusCode())
	}

	if result.Chart.Error != nil {
		return 0, provider.NewValidationError(
			fmt.Sprintf("chart API error %s: %s", result.Chart.Error.Code, result.Chart.Error.Description))
	}

	value, ok := result.lastClose()
	if !ok {
		slog.Debug("chart response carried no usable close",
			"symbol", symbol, "range", dataRange, "interval", interval)
		return 0, fmt.Errorf("%s %s candles for %s: %w", dataRange, interval, symbol, provider.ErrNoData)
	}

	return math.Round(value*100) / 100, nil
}
