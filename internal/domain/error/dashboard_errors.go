// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidDateRange is returned when the range's "to" precedes its "from".
	ErrInvalidDateRange = errors.New("end date must not precede start date")
)

// DashboardErrorCode defines error codes for dashboard errors.
type DashboardErrorCode string

const (
	ErrCodeInvalidDateRange DashboardErrorCode = "DSH-010001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
