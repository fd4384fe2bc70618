// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Error kinds produced while handling a conversion. The set is closed: every
// failure surfaced by the conversion pipeline wraps exactly one of these.
var (
	// ErrValidation is returned when a request fails validation.
	// It is usually wrapped by a *ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrConversion is the umbrella for every failure that happens after
	// validation. The API layer maps it to a single generic response.
	ErrConversion = errors.New("conversion failed")

	// ErrProviderUnavailable is returned when the rate provider cannot be
	// reached, times out, or answers with a non-success status.
	ErrProviderUnavailable = fmt.Errorf("%w: rate provider unavailable", ErrConversion)

	// ErrUnknownCurrency is returned when a currency code is not known to the provider.
	ErrUnknownCurrency = fmt.Errorf("%w: unknown currency code", ErrConversion)

	// ErrMalformedResponse is returned when the provider's body cannot be used.
	ErrMalformedResponse = fmt.Errorf("%w: malformed provider response", ErrConversion)

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. If err is nil the
// error wraps ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Message)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Message)
}

// Unwrap returns the wrapped error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation for every ValidationError so callers can match
// on the kind without caring about the wrapped cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
