package cboe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vixwatch/internal/provider"
)

func TestQuoteFetcher_Name(t *testing.T) {
	f := NewQuoteFetcher("_VIX", "http://localhost")
	if got := f.Name(); got != "cboe" {
		t.Errorf("Name() = %q, want %q", got, "cboe")
	}
}

func TestQuoteFetcher_Fetch_Success(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/global/delayed_quotes/quotes/_VIX.json" {
			t.Errorf("path = %q, want /api/global/delayed_quotes/quotes/_VIX.json", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"data": [
				{"symbol": "_VIX", "lastSale": 23.118},
				{"symbol": "_VIX1D", "lastSale": 21.02}
			]
		}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	f := NewQuoteFetcher("_VIX", server.URL)
	quote, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() returned unexpected error: %v", err)
	}

	// First entry's lastSale, rounded to 2 decimal places
	if quote.Value != 23.12 {
		t.Errorf("Value = %.4f, want 23.12", quote.Value)
	}
	if quote.Source != "cboe" {
		t.Errorf("Source = %q, want %q", quote.Source, "cboe")
	}
}

func TestQuoteFetcher_Fetch_NonSuccessStatusIsNoData(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	f := NewQuoteFetcher("_VIX", server.URL)
	_, err := f.Fetch(context.Background())
	if !errors.Is(err, provider.ErrNoData) {
		t.Errorf("Fetch() error = %v, want ErrNoData", err)
	}
}

func TestQuoteFetcher_Fetch_EmptyData(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data": []}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	f := NewQuoteFetcher("_VIX", server.URL)
	_, err := f.Fetch(context.Background())
	if !errors.Is(err, provider.ErrNoData) {
		t.Errorf("Fetch() error = %v, want ErrNoData", err)
	}
}

func TestQuoteFetcher_Fetch_MissingLastSale(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data": [{"symbol": "_VIX"}]}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	f := NewQuoteFetcher("_VIX", server.URL)
	_, err := f.Fetch(context.Background())
	if !errors.Is(err, provider.ErrNoData) {
		t.Errorf("Fetch() error = %v, want ErrNoData", err)
	}
}

func TestQuoteFetcher_Fetch_ContextCancellation(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	f := NewQuoteFetcher("_VIX", server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx)
	if err == nil {
		t.Error("Fetch() expected error for cancelled context, got nil")
	}
}
