package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VIX_THRESHOLD", "VIX_SYMBOL", "CBOE_SYMBOL",
		"YAHOO_CHART_BASE_URL", "YAHOO_QUOTE_BASE_URL", "CBOE_BASE_URL",
		"GITHUB_OUTPUT", "VIX_RETRY_ATTEMPTS", "VIX_RETRY_DELAY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Threshold != DefaultThreshold {
		t.Errorf("Threshold = %v, want %v", cfg.Threshold, DefaultThreshold)
	}
	if cfg.Symbol != "^VIX" {
		t.Errorf("Symbol = %q, want %q", cfg.Symbol, "^VIX")
	}
	if cfg.CboeSymbol != "_VIX" {
		t.Errorf("CboeSymbol = %q, want %q", cfg.CboeSymbol, "_VIX")
	}
	if cfg.YahooChartBaseURL != "https://query1.finance.yahoo.com" {
		t.Errorf("YahooChartBaseURL = %q", cfg.YahooChartBaseURL)
	}
	if cfg.CboeBaseURL != "https://cdn.cboe.com" {
		t.Errorf("CboeBaseURL = %q", cfg.CboeBaseURL)
	}
	if cfg.GitHubOutputPath != "" {
		t.Errorf("GitHubOutputPath = %q, want empty", cfg.GitHubOutputPath)
	}
	if cfg.RetryAttempts != 3 {
		t.Errorf("RetryAttempts = %d, want 3", cfg.RetryAttempts)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("RetryDelay = %v, want 2s", cfg.RetryDelay)
	}
}

func TestLoad_ThresholdOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIX_THRESHOLD", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Threshold != 30.0 {
		t.Errorf("Threshold = %v, want 30.0", cfg.Threshold)
	}
}

func TestLoad_ThresholdOverrideFractional(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIX_THRESHOLD", "27.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Threshold != 27.5 {
		t.Errorf("Threshold = %v, want 27.5", cfg.Threshold)
	}
}

func TestLoad_InvalidThreshold(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIX_THRESHOLD", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for unparseable threshold, got nil")
	}
}

func TestLoad_BaseURLOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("YAHOO_CHART_BASE_URL", "http://localhost:8081")
	t.Setenv("YAHOO_QUOTE_BASE_URL", "http://localhost:8082")
	t.Setenv("CBOE_BASE_URL", "http://localhost:8083")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.YahooChartBaseURL != "http://localhost:8081" {
		t.Errorf("YahooChartBaseURL = %q", cfg.YahooChartBaseURL)
	}
	if cfg.YahooQuoteBaseURL != "http://localhost:8082" {
		t.Errorf("YahooQuoteBaseURL = %q", cfg.YahooQuoteBaseURL)
	}
	if cfg.CboeBaseURL != "http://localhost:8083" {
		t.Errorf("CboeBaseURL = %q", cfg.CboeBaseURL)
	}
}

func TestLoad_RetryOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIX_RETRY_ATTEMPTS", "5")
	t.Setenv("VIX_RETRY_DELAY", "500ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.RetryAttempts != 5 {
		t.Errorf("RetryAttempts = %d, want 5", cfg.RetryAttempts)
	}
	if cfg.RetryDelay != 500*time.Millisecond {
		t.Errorf("RetryDelay = %v, want 500ms", cfg.RetryDelay)
	}
}

func TestLoad_GitHubOutputPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_OUTPUT", "/tmp/github_output")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.GitHubOutputPath != "/tmp/github_output" {
		t.Errorf("GitHubOutputPath = %q, want /tmp/github_output", cfg.GitHubOutputPath)
	}
}

func TestLoad_InvalidRetryAttempts(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIX_RETRY_ATTEMPTS", "0")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for zero retry attempts, got nil")
	}
}
