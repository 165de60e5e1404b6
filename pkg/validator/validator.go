// Package validator adapts go-playground/validator to echo's Validator
// interface so request DTOs can declare their constraints as struct tags.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a shared validator instance. The instance caches
// struct metadata, so one per process is enough.
type CustomValidator struct {
	v *validator.Validate
}

// New builds the validator used by the HTTP layer.
func New() *CustomValidator {
	return &CustomValidator{v: validator.New()}
}

// Validate checks a bound request struct against its validate tags.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
