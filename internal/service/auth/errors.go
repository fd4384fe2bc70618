package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrWrongTokenType indicates a token of another type was presented where an access token was expected
	ErrWrongTokenType = errors.New("wrong authentication token type")

	// ErrInvalidRole indicates the token carries a role the service does not know
	ErrInvalidRole = errors.New("authentication token has unknown role")
)
