package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"vixwatch/internal/cboe"
	"vixwatch/internal/chain"
	"vixwatch/internal/config"
	"vixwatch/internal/output"
	"vixwatch/internal/payload"
	"vixwatch/internal/provider"
	"vixwatch/internal/retry"
	"vixwatch/internal/yahoo"
)

// Exit codes: 0 means a value was obtained (whether or not the threshold was
// exceeded), 2 means every provider was exhausted and the payload carries an
// error. The JSON payload is always the final stdout line either way.
const (
	exitOK           = 0
	exitConfig       = 1
	exitTotalFailure = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	// Logs go to stderr so the payload stays the last parseable stdout line
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return exitConfig
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received interrupt signal, shutting down")
		cancel()
	}()

	// Providers in priority order: richest intraday source first,
	// progressively coarser fallbacks after.
	providers := []provider.Provider{
		yahoo.NewIntradayFetcher(cfg.Symbol, cfg.YahooChartBaseURL),
		yahoo.NewDailyFetcher(cfg.Symbol, cfg.YahooChartBaseURL),
		yahoo.NewQuoteFetcher(cfg.Symbol, cfg.YahooQuoteBaseURL),
		cboe.NewQuoteFetcher(cfg.CboeSymbol, cfg.CboeBaseURL),
	}

	ch := chain.New(retry.New(cfg.RetryAttempts, cfg.RetryDelay), providers)
	writer := output.NewGitHubWriter(cfg.GitHubOutputPath)

	value, source, err := ch.FetchValue(ctx)
	if err != nil {
		slog.Error("error fetching VIX", "error", err)
		emit(payload.BuildError(cfg.Threshold, err.Error()), writer)
		return exitTotalFailure
	}

	emit(payload.Build(value, source, cfg.Threshold), writer)
	return exitOK
}

// emit prints the payload as a single JSON line on stdout and, when the CI
// output channel is configured, appends the workflow outputs. The append is
// best-effort: a failure is logged and never changes the outcome.
func emit(p payload.Payload, w *output.GitHubWriter) {
	raw, err := json.Marshal(p)
	if err != nil {
		slog.Error("failed to marshal payload", "error", err)
		return
	}
	fmt.Println(string(raw))

	if err := w.Append(p); err != nil {
		slog.Error("failed to write GitHub output", "error", err)
	}
}
