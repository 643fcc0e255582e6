package http

import "github.com/go-playground/validator/v10"

// RequestValidator plugs go-playground/validator into echo so request DTOs
// are checked against their struct tags on bind.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used by the echo instance.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
