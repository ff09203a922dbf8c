// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// PasswordResetEmail carries the data needed to send a password reset email.
type PasswordResetEmail struct {
	To       string
	UserName string
	ResetURL string
}

// EmailSender defines the interface for outbound transactional email.
type EmailSender interface {
	// SendPasswordReset sends a password reset email to the user.
	SendPasswordReset(ctx context.Context, email PasswordResetEmail) error
}
