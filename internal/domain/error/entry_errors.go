// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// Entry domain errors, shared by the income, expense, investment and
// subscription stores.
var (
	// ErrEntryNotFound is returned when an entry is not found in the system.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrNotEntryOwner is returned when a mutation targets an entry the user does not own.
	ErrNotEntryOwner = errors.New("not authorized to modify entry")

	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidCategory is returned when a category is not in the entity's enum.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidPaymentMethod is returned when an expense payment method is unknown.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidBillingCycle is returned when a subscription billing cycle is unknown.
	ErrInvalidBillingCycle = errors.New("invalid billing cycle")

	// ErrInvalidSubscriptionStatus is returned when a subscription status is unknown.
	ErrInvalidSubscriptionStatus = errors.New("invalid subscription status")

	// ErrInvalidUnits is returned when investment units are zero or negative.
	ErrInvalidUnits = errors.New("units must be positive")

	// ErrInvalidPrice is returned when an investment unit price is zero or negative.
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrEmptyName is returned when a required name field is empty.
	ErrEmptyName = errors.New("name is required")

	// ErrInvalidEntryDate is returned when an entry date is missing or malformed.
	ErrInvalidEntryDate = errors.New("invalid entry date")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount             EntryErrorCode = "ENT-010001"
	ErrCodeInvalidCategory           EntryErrorCode = "ENT-010002"
	ErrCodeInvalidPaymentMethod      EntryErrorCode = "ENT-010003"
	ErrCodeInvalidBillingCycle       EntryErrorCode = "ENT-010004"
	ErrCodeInvalidSubscriptionStatus EntryErrorCode = "ENT-010005"
	ErrCodeInvalidUnits              EntryErrorCode = "ENT-010006"
	ErrCodeInvalidPrice              EntryErrorCode = "ENT-010007"
	ErrCodeEmptyName                 EntryErrorCode = "ENT-010008"
	ErrCodeInvalidEntryDate          EntryErrorCode = "ENT-010009"

	// Authorization errors (02XXXX)
	ErrCodeEntryNotFound EntryErrorCode = "ENT-020001"
	ErrCodeNotEntryOwner EntryErrorCode = "ENT-020002"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
