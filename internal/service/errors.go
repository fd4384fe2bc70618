package service

import (
	"errors"
	"fmt"
)

// ErrNilDependency is returned by constructors when a required dependency is missing.
var ErrNilDependency = errors.New("required dependency is nil")

// ServiceError wraps errors from a service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_service")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
