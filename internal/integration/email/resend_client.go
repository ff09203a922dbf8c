// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"

	"github.com/fintrack/backend/internal/application/adapter"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendPasswordReset sends a password reset email via Resend.
func (c *ResendClient) SendPasswordReset(ctx context.Context, input adapter.PasswordResetEmail) error {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: "Reset your FinTrack password",
		Html:    passwordResetHTML(input),
		Text:    passwordResetText(input),
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func passwordResetHTML(input adapter.PasswordResetEmail) string {
	name := html.EscapeString(input.UserName)
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>We received a request to reset your FinTrack password. The link below is valid for one hour:</p>
<p><a href="%s">Reset password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>`, name, input.ResetURL)
}

func passwordResetText(input adapter.PasswordResetEmail) string {
	return fmt.Sprintf(`Hi %s,

We received a request to reset your FinTrack password. The link below is valid for one hour:

%s

If you did not request this, you can safely ignore this email.`, input.UserName, input.ResetURL)
}

// Ensure the implementation satisfies the interface.
var _ adapter.EmailSender = (*ResendClient)(nil)
