// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request DTOs via struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator with the default tag name ("validate").
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
