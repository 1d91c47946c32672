package apperr

import "errors"

// ValidationError reports malformed or out-of-policy input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a well formed query without matching data
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConversionError reports an upstream payload that can not be mapped
type ConversionError struct {
	Message string
}

func (e *ConversionError) Error() string {
	return e.Message
}

func Validation(message string) error {
	return &ValidationError{Message: message}
}

func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

func Conversion(message string) error {
	return &ConversionError{Message: message}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConversion(err error) bool {
	var target *ConversionError
	return errors.As(err, &target)
}
