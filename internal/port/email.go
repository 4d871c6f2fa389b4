package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendKYCVerifiedEmail(ctx context.Context, toEmail, toName string) error
}
