// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"georemind/internal/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator backed by go-playground/validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks struct tags and flattens field errors into one message.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		message := fieldErr.Field() + " failed on " + fieldErr.Tag()
		if fieldErr.Param() != "" {
			message += "=" + fieldErr.Param()
		}
		messages = append(messages, message)
	}

	return errors.New(strings.Join(messages, "; "))
}
