package shared

import (
	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}
