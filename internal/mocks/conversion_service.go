package mocks

import (
	"context"

	"github.com/phrazzld/fxconvert-api/internal/domain"
)

// MockConversionService implements service.ConversionService for testing
type MockConversionService struct {
	// ConvertFn allows test cases to mock the Convert behavior
	ConvertFn func(ctx context.Context, from, to, amount string) (*domain.ConversionResult, error)

	// Called records whether Convert was invoked
	Called bool
}

// Convert implements the service.ConversionService interface
func (m *MockConversionService) Convert(
	ctx context.Context,
	from, to, amount string,
) (*domain.ConversionResult, error) {
	m.Called = true
	if m.ConvertFn != nil {
		return m.ConvertFn(ctx, from, to, amount)
	}
	return nil, nil
}
