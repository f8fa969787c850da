// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "catalog/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator installed on the echo server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs struct tag validation and maps failures onto the
// application error taxonomy so the central error handler renders them.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
