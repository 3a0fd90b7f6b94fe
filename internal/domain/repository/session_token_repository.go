// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionTokenNotFound is returned when a session token record is absent
// from the store. Store presence is the authority for token validity.
var ErrSessionTokenNotFound = errors.New("session token not found")

// SessionTokenRepository defines the operations for session token persistence.
// Records are created at login, never mutated, and become unusable at expiry;
// physical removal happens lazily via DeleteExpired.
type SessionTokenRepository interface {
	// Create persists a new session token record.
	Create(ctx context.Context, token *entity.SessionToken) error

	// FindByToken retrieves a session token record by its exact token value.
	// Expired records are still returned; the caller decides expiry semantics.
	FindByToken(ctx context.Context, token string) (*entity.SessionToken, error)

	// DeleteExpired prunes session token records whose expiry has passed.
	// Returns the number of records removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
