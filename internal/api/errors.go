package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/fxconvert-api/internal/domain"
)

// Client-facing messages. Their exact text is part of the HTTP contract.
const (
	MsgMissingParameters = "Missing required parameters (from, to, amount)."
	MsgInvalidAmount     = "Invalid amount parameter."
	MsgConversionFailed  = "An error occurred while fetching exchange rates."
	MsgUnexpected        = "An unexpected error occurred"
)

// MapErrorToStatusCode maps conversion errors to HTTP status codes.
// Authentication failures are answered by the auth middleware and never reach it.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Every conversion failure collapses to a server error; the precise
	// kind is only logged.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr) && validationErr.Field == "amount":
		return MsgInvalidAmount
	case errors.Is(err, domain.ErrValidation):
		return MsgMissingParameters
	case errors.Is(err, domain.ErrConversion):
		return MsgConversionFailed
	default:
		return MsgUnexpected
	}
}
