// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmailAlreadyExists is returned when registering with an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when a token is malformed, expired, or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrResetTokenUsed is returned when a password reset token has already been consumed.
	ErrResetTokenUsed = errors.New("reset token already used")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail       AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-010002"
	ErrCodeEmailExists        AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010004"

	// Token errors (02XXXX)
	ErrCodeMissingToken   AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken   AuthErrorCode = "AUTH-020002"
	ErrCodeResetTokenUsed AuthErrorCode = "AUTH-020003"

	// Rate limiting (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-030001"

	// Lookup errors (04XXXX)
	ErrCodeUserNotFound AuthErrorCode = "AUTH-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
