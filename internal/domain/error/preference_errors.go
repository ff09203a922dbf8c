// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// Preference domain errors.
var (
	// ErrInvalidCurrency is returned when the currency is not one of the supported codes.
	ErrInvalidCurrency = errors.New("unsupported currency")

	// ErrInvalidDateFormat is returned when the date format is not one of the supported patterns.
	ErrInvalidDateFormat = errors.New("unsupported date format")
)

// PreferenceErrorCode defines error codes for preference errors.
type PreferenceErrorCode string

const (
	ErrCodeInvalidCurrency   PreferenceErrorCode = "PRF-010001"
	ErrCodeInvalidDateFormat PreferenceErrorCode = "PRF-010002"
)

// PreferenceError represents a preference error with code and message.
type PreferenceError struct {
	Code    PreferenceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PreferenceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PreferenceError) Unwrap() error {
	return e.Err
}

// NewPreferenceError creates a new PreferenceError with the given code and message.
func NewPreferenceError(code PreferenceErrorCode, message string, err error) *PreferenceError {
	return &PreferenceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
