package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/phrazzld/fxconvert-api/internal/domain"
	"github.com/phrazzld/fxconvert-api/internal/platform/logger"
	"github.com/phrazzld/fxconvert-api/internal/redact"
)

// RateProvider returns the current rate table for a base currency.
type RateProvider interface {
	LatestRates(ctx context.Context, base string) (*domain.RateTable, error)
}

// ConversionService converts amounts between currencies.
type ConversionService interface {
	// Convert converts amount from one currency to another using the provider's
	// current rate. It returns a complete result or an error wrapping exactly one
	// of domain.ErrValidation, domain.ErrProviderUnavailable,
	// domain.ErrUnknownCurrency or domain.ErrMalformedResponse.
	Convert(ctx context.Context, from, to, amount string) (*domain.ConversionResult, error)
}

// conversionServiceImpl implements the ConversionService interface
type conversionServiceImpl struct {
	provider RateProvider
	logger   *slog.Logger
}

// NewConversionService creates a new ConversionService.
// It returns an error if the provider is nil.
func NewConversionService(provider RateProvider, logger *slog.Logger) (ConversionService, error) {
	if provider == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "provider cannot be nil",
			Err:       ErrNilDependency,
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &conversionServiceImpl{
		provider: provider,
		logger:   logger.With("component", "conversion_service"),
	}, nil
}

// Convert implements ConversionService.
func (s *conversionServiceImpl) Convert(
	ctx context.Context,
	from, to, amount string,
) (*domain.ConversionResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	req := domain.ConversionRequest{From: from, To: to, Amount: amount}
	if !req.Complete() {
		return nil, domain.NewValidationError("", "missing required parameters (from, to, amount)", nil)
	}

	value, err := req.ParseAmount()
	if err != nil {
		log.Debug("rejected non-numeric amount", "amount", amount)
		return nil, err
	}

	table, err := s.provider.LatestRates(ctx, from)
	if err != nil {
		if !errors.Is(err, domain.ErrConversion) {
			err = fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
		}
		log.Warn("failed to fetch rates",
			"from", from,
			"to", to,
			"error", redact.Error(err))
		return nil, err
	}

	// Codes are looked up exactly as given; "eur" is not "EUR".
	rate, ok := table.Rate(to)
	if !ok {
		log.Info("target currency not offered by provider", "from", from, "to", to)
		return nil, fmt.Errorf("%w: invalid currency code: %s", domain.ErrUnknownCurrency, to)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		log.Warn("provider returned unusable rate", "from", from, "to", to, "rate", rate)
		return nil, fmt.Errorf("%w: unusable rate for %s", domain.ErrMalformedResponse, to)
	}

	result := &domain.ConversionResult{
		From:            from,
		To:              to,
		OriginalAmount:  amount,
		ConvertedAmount: domain.ConvertAmount(value, rate),
		ConversionRate:  rate,
	}

	log.Debug("conversion completed",
		"from", from,
		"to", to,
		"rate", rate,
		"converted_amount", result.ConvertedAmount)
	return result, nil
}
