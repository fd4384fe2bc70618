package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/phrazzld/fxconvert-api/internal/domain"
	"github.com/phrazzld/fxconvert-api/internal/mocks"
	"github.com/phrazzld/fxconvert-api/internal/service"
	"github.com/phrazzld/fxconvert-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func usdTable() *domain.RateTable {
	return &domain.RateTable{
		Base:  "USD",
		Rates: map[string]float64{"USD": 1, "EUR": 0.9234, "GBP": 0.79, "ZERO": 0},
	}
}

func newService(t *testing.T, provider service.RateProvider) service.ConversionService {
	t.Helper()
	svc, err := service.NewConversionService(provider, discardLogger())
	require.NoError(t, err)
	return svc
}

func TestNewConversionService_NilProvider(t *testing.T) {
	t.Parallel()

	svc, err := service.NewConversionService(nil, discardLogger())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, service.ErrNilDependency)

	var svcErr *service.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "create_service", svcErr.Operation)
}

func TestNewConversionService_NilLoggerUsesDefault(t *testing.T) {
	t.Parallel()

	svc, err := service.NewConversionService(&mocks.MockRateProvider{Table: usdTable()}, nil)

	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestConversionService_Convert_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		from, to      string
		amount        string
		wantConverted string
		wantRate      float64
	}{
		{"usd to eur", "USD", "EUR", "100", "92.34", 0.9234},
		{"fractional amount", "USD", "GBP", "12.50", "9.88", 0.79},
		{"same currency", "USD", "USD", "42", "42.00", 1},
		{"zero amount", "USD", "EUR", "0", "0.00", 0.9234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &mocks.MockRateProvider{Table: usdTable()}
			svc := newService(t, provider)

			result, err := svc.Convert(context.Background(), tt.from, tt.to, tt.amount)

			require.NoError(t, err)
			assert.Equal(t, &domain.ConversionResult{
				From:            tt.from,
				To:              tt.to,
				OriginalAmount:  tt.amount,
				ConvertedAmount: tt.wantConverted,
				ConversionRate:  tt.wantRate,
			}, result)
			assert.Equal(t, []string{tt.from}, provider.Calls(), "exactly one provider call per conversion")
		})
	}
}

func TestConversionService_Convert_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		from, to, amount string
	}{
		{"missing from", "", "EUR", "100"},
		{"missing to", "USD", "", "50"},
		{"missing amount", "USD", "EUR", ""},
		{"non-numeric amount", "USD", "EUR", "abc"},
		{"NaN amount", "USD", "EUR", "NaN"},
		{"amount out of range", "USD", "EUR", "1e10000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &mocks.MockRateProvider{Table: usdTable()}
			svc := newService(t, provider)

			result, err := svc.Convert(context.Background(), tt.from, tt.to, tt.amount)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.NotErrorIs(t, err, domain.ErrConversion)
			assert.Empty(t, provider.Calls(), "provider must not be called for invalid input")
		})
	}
}

func TestConversionService_Convert_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider *mocks.MockRateProvider
		to       string
		expected error
	}{
		{
			name:     "unknown target currency",
			provider: &mocks.MockRateProvider{Table: usdTable()},
			to:       "XXX",
			expected: domain.ErrUnknownCurrency,
		},
		{
			name:     "lower case target",
			provider: &mocks.MockRateProvider{Table: usdTable()},
			to:       "eur",
			expected: domain.ErrUnknownCurrency,
		},
		{
			name:     "padded target",
			provider: &mocks.MockRateProvider{Table: usdTable()},
			to:       " EUR",
			expected: domain.ErrUnknownCurrency,
		},
		{
			name:     "provider unavailable",
			provider: &mocks.MockRateProvider{Err: domain.ErrProviderUnavailable},
			to:       "EUR",
			expected: domain.ErrProviderUnavailable,
		},
		{
			name:     "unknown base currency",
			provider: &mocks.MockRateProvider{Err: domain.ErrUnknownCurrency},
			to:       "EUR",
			expected: domain.ErrUnknownCurrency,
		},
		{
			name:     "malformed response",
			provider: &mocks.MockRateProvider{Err: domain.ErrMalformedResponse},
			to:       "EUR",
			expected: domain.ErrMalformedResponse,
		},
		{
			name:     "unclassified provider error",
			provider: &mocks.MockRateProvider{Err: errors.New("connection reset")},
			to:       "EUR",
			expected: domain.ErrProviderUnavailable,
		},
		{
			name:     "context deadline",
			provider: &mocks.MockRateProvider{Err: context.DeadlineExceeded},
			to:       "EUR",
			expected: context.DeadlineExceeded,
		},
		{
			name:     "zero rate",
			provider: &mocks.MockRateProvider{Table: usdTable()},
			to:       "ZERO",
			expected: domain.ErrMalformedResponse,
		},
		{
			name: "non-finite rate",
			provider: &mocks.MockRateProvider{Table: &domain.RateTable{
				Base:  "USD",
				Rates: map[string]float64{"EUR": math.Inf(1)},
			}},
			to:       "EUR",
			expected: domain.ErrMalformedResponse,
		},
		{
			name:     "nil table",
			provider: &mocks.MockRateProvider{},
			to:       "EUR",
			expected: domain.ErrUnknownCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newService(t, tt.provider)

			result, err := svc.Convert(context.Background(), "USD", tt.to, "10")

			assert.Nil(t, result, "no partial result on failure")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.ErrorIs(t, err, domain.ErrConversion, "every post-validation failure is a conversion error")
			assert.NotErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestConversionService_Convert_Idempotent(t *testing.T) {
	t.Parallel()

	svc := newService(t, &mocks.MockRateProvider{Table: usdTable()})

	first, err := svc.Convert(context.Background(), "USD", "EUR", "100")
	require.NoError(t, err)
	second, err := svc.Convert(context.Background(), "USD", "EUR", "100")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConversionService_Convert_Concurrent(t *testing.T) {
	t.Parallel()

	provider := &mocks.MockRateProvider{Table: usdTable()}
	svc := newService(t, provider)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]*domain.ConversionResult, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Convert(context.Background(), "USD", "EUR", "100")
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "92.34", results[i].ConvertedAmount)
	}
	assert.Len(t, provider.Calls(), workers, "no deduplication between concurrent requests")
}

func TestConversionService_Convert_LogsRedactedProviderError(t *testing.T) {
	t.Parallel()

	log, logs := testutils.NewTestLogger()
	provider := &mocks.MockRateProvider{
		Err: fmt.Errorf("%w: GET https://v6.exchangerate-api.com/v6/supersecretkey1/latest/USD: timeout",
			domain.ErrProviderUnavailable),
	}
	svc, err := service.NewConversionService(provider, log)
	require.NoError(t, err)

	_, err = svc.Convert(context.Background(), "USD", "EUR", "10")
	require.Error(t, err)

	entries := logs.Find("failed to fetch rates")
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "conversion_service", entries[0]["component"])
	assert.False(t, logs.Contains("supersecretkey1"), "provider key must not be logged")
}
