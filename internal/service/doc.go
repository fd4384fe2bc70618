// Package service contains the application-specific use cases.
//
// ConversionService is the rate converter: it validates the amount, asks a
// RateProvider for the current table of the source currency, looks up the
// target rate and computes the converted amount. Dependencies arrive through
// constructor injection, so the provider can be the ExchangeRate-API client in
// production and a fake in tests.
//
// Error handling:
//   - Every failure wraps one of the domain error kinds
//     (ErrValidation, ErrProviderUnavailable, ErrUnknownCurrency, ErrMalformedResponse)
//   - Provider errors that carry no kind are classified as ErrProviderUnavailable
//   - No partial result is ever returned
package service
