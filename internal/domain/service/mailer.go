package service

import "context"

// Mailer defines the interface for the outbound transactional email gateway.
// It is injected into the use cases at construction so tests can substitute a
// double; there is no module-level transporter singleton.
//
// A delivery failure surfaces as an ordinary error and aborts the calling use
// case, even when the primary state mutation already committed. This is a
// known inconsistency window carried over from the system's design.
type Mailer interface {
	// SendWelcomeEmail sends the post-registration welcome message.
	SendWelcomeEmail(ctx context.Context, to string) error

	// SendPasswordResetEmail sends the reset link embedding the raw token.
	SendPasswordResetEmail(ctx context.Context, to, resetToken string) error

	// SendPasswordResetSuccessEmail confirms a completed password rotation.
	SendPasswordResetSuccessEmail(ctx context.Context, to string) error
}
