package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"weather-data-api/internal/domain/apperr"
	"weather-data-api/pkg/msg"
)

// RequestValidator plugs go-playground/validator into echo's Context.Validate
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate returns an apperr.ValidationError naming the first rejected value
func (v *RequestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fieldError := validationErrors[0]
	if fieldError.Tag() == "datetime" {
		return apperr.Validation(msg.GetMessage("app.error.invalid-date", fieldError.Value()))
	}
	return apperr.Validation(msg.GetMessage("app.error.invalid-body"))
}
