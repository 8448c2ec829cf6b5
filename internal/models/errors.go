package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrInvalidParameter       = errors.New("invalid parameter")
	ErrDegenerateDistribution = errors.New("distribution has no positive probability mass")
	ErrUnknownSource          = errors.New("unknown probability source")
)

// ValidationError carries a machine-readable code alongside the message.
type ValidationError struct {
	Code    string
	Message string
}

// NewValidationError creates a validation error with a code and message.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap makes every validation error match ErrInvalidParameter.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameter
}
