// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrResetTokenNotFound is returned when a password reset token record is
// absent, either because it never existed or because it was already consumed.
var ErrResetTokenNotFound = errors.New("password reset token not found")

// ResetTokenRepository defines the operations for password reset token
// persistence. A record is created per forgot-password request and deleted on
// consumption, so a consumed token can never authorize a second reset.
type ResetTokenRepository interface {
	// Create persists a new reset token record.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByToken retrieves a reset token record by its exact token value.
	// Expired records are still returned; the caller decides expiry semantics.
	FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)

	// DeleteByToken removes a reset token record, consuming it.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteExpired prunes reset token records whose expiry has passed.
	// Returns the number of records removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
