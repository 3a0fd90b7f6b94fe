package usecase

import (
	"context"
	"time"
)

// RequestResetOutput returns the issued reset token. The raw token is handed
// back to the caller in addition to the email delivery.
type RequestResetOutput struct {
	ResetToken string
	ExpiresAt  time.Time
}

// PasswordResetUsecase defines the two-step password reset protocol.
type PasswordResetUsecase interface {
	// RequestReset issues a reset token for the account owning the email
	// address, persists it and sends the reset email.
	RequestReset(ctx context.Context, email string) (*RequestResetOutput, error)

	// ResetPassword consumes a reset token and replaces the account's
	// password. The token record is deleted on success, so a second call
	// with the same token fails with TokenNotFound.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
