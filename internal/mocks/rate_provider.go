package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/fxconvert-api/internal/domain"
)

// MockRateProvider implements service.RateProvider for testing
type MockRateProvider struct {
	// LatestRatesFn allows test cases to mock the LatestRates behavior
	LatestRatesFn func(ctx context.Context, base string) (*domain.RateTable, error)

	// Default values used when LatestRatesFn isn't explicitly defined
	Table *domain.RateTable
	Err   error

	mu    sync.Mutex
	bases []string
}

// LatestRates implements the service.RateProvider interface
func (m *MockRateProvider) LatestRates(ctx context.Context, base string) (*domain.RateTable, error) {
	m.mu.Lock()
	m.bases = append(m.bases, base)
	m.mu.Unlock()

	if m.LatestRatesFn != nil {
		return m.LatestRatesFn(ctx, base)
	}
	return m.Table, m.Err
}

// Calls returns the base currencies LatestRates was called with, in order.
func (m *MockRateProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.bases...)
}
