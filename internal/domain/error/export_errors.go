// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// Export domain errors.
var (
	// ErrUnknownExportEntity is returned when the requested entity type cannot be exported.
	ErrUnknownExportEntity = errors.New("unknown export entity")
)

// ExportErrorCode defines error codes for export errors.
type ExportErrorCode string

const (
	ErrCodeUnknownExportEntity ExportErrorCode = "EXP-010001"
)

// ExportError represents an export error with code and message.
type ExportError struct {
	Code    ExportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError with the given code and message.
func NewExportError(code ExportErrorCode, message string, err error) *ExportError {
	return &ExportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
