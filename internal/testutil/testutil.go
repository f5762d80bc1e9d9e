package testutil

import (
	"context"

	"vixwatch/internal/provider"
)

// MockProvider is a mock implementation of the Provider interface for testing
type MockProvider struct {
	FetchFunc func(ctx context.Context) (provider.Quote, error)
	NameFunc  func() string

	// FetchCalls counts invocations of Fetch.
	FetchCalls int
}

// Fetch implements the Provider interface
func (m *MockProvider) Fetch(ctx context.Context) (provider.Quote, error) {
	m.FetchCalls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return provider.Quote{}, nil
}

// Name implements the Provider interface
func (m *MockProvider) Name() string {
	if m.NameFunc != nil {
		return m.NameFunc()
	}
	return "mock"
}

// NewMockProvider creates a simple mock provider with predefined values
func NewMockProvider(name string, value float64, err error) *MockProvider {
	return &MockProvider{
		FetchFunc: func(ctx context.Context) (provider.Quote, error) {
			if err != nil {
				return provider.Quote{}, err
			}
			return provider.Quote{Value: value, Source: name}, nil
		},
		NameFunc: func() string {
			return name
		},
	}
}
