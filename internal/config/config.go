package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// DefaultThreshold is the alert threshold used when no override is set.
const DefaultThreshold = 35.0

// Config holds all configuration for the VIX watcher.
type Config struct {
	// Threshold is the alert level the fetched value is compared against.
	// Fixed at startup, immutable for the run.
	Threshold float64

	// Symbol is the Yahoo ticker for the tracked index.
	Symbol string
	// CboeSymbol is the same index in Cboe's own notation.
	CboeSymbol string

	// Base URLs for the external endpoints (configurable for testing)
	YahooChartBaseURL string
	YahooQuoteBaseURL string
	CboeBaseURL       string

	// GitHubOutputPath is the CI output file; empty disables that channel.
	GitHubOutputPath string

	// Per-provider retry budget
	RetryAttempts int
	RetryDelay    time.Duration
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables (all optional):
//   - VIX_THRESHOLD (parseable float, defaults to 35.0)
//   - VIX_SYMBOL (defaults to ^VIX)
//   - CBOE_SYMBOL (defaults to _VIX)
//   - YAHOO_CHART_BASE_URL, YAHOO_QUOTE_BASE_URL, CBOE_BASE_URL
//   - GITHUB_OUTPUT (set by GitHub Actions; enables the CI output channel)
//   - VIX_RETRY_ATTEMPTS, VIX_RETRY_DELAY
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()

	v.SetDefault("vix_threshold", DefaultThreshold)
	v.SetDefault("vix_symbol", "^VIX")
	v.SetDefault("cboe_symbol", "_VIX")
	v.SetDefault("yahoo_chart_base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("yahoo_quote_base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("cboe_base_url", "https://cdn.cboe.com")
	v.SetDefault("vix_retry_attempts", 3)
	v.SetDefault("vix_retry_delay", 2*time.Second)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.vixwatch")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	v.BindEnv("vix_threshold", "VIX_THRESHOLD")
	v.BindEnv("vix_symbol", "VIX_SYMBOL")
	v.BindEnv("cboe_symbol", "CBOE_SYMBOL")
	v.BindEnv("yahoo_chart_base_url", "YAHOO_CHART_BASE_URL")
	v.BindEnv("yahoo_quote_base_url", "YAHOO_QUOTE_BASE_URL")
	v.BindEnv("cboe_base_url", "CBOE_BASE_URL")
	v.BindEnv("github_output", "GITHUB_OUTPUT")
	v.BindEnv("vix_retry_attempts", "VIX_RETRY_ATTEMPTS")
	v.BindEnv("vix_retry_delay", "VIX_RETRY_DELAY")

	// Parse the threshold by hand so a malformed override fails loudly
	// instead of silently casting to zero.
	rawThreshold := v.GetString("vix_threshold")
	threshold, err := strconv.ParseFloat(rawThreshold, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid VIX_THRESHOLD %q: %w", rawThreshold, err)
	}

	config := &Config{
		Threshold:         threshold,
		Symbol:            v.GetString("vix_symbol"),
		CboeSymbol:        v.GetString("cboe_symbol"),
		YahooChartBaseURL: v.GetString("yahoo_chart_base_url"),
		YahooQuoteBaseURL: v.GetString("yahoo_quote_base_url"),
		CboeBaseURL:       v.GetString("cboe_base_url"),
		GitHubOutputPath:  v.GetString("github_output"),
		RetryAttempts:     v.GetInt("vix_retry_attempts"),
		RetryDelay:        v.GetDuration("vix_retry_delay"),
	}

	if config.RetryAttempts < 1 {
		return nil, fmt.Errorf("VIX_RETRY_ATTEMPTS must be at least 1, got %d", config.RetryAttempts)
	}
	if config.RetryDelay < 0 {
		return nil, fmt.Errorf("VIX_RETRY_DELAY must not be negative, got %s", config.RetryDelay)
	}

	return config, nil
}
