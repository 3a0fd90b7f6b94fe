package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SessionUsecase defines session token validation for the auth middleware.
// The stored record is the authority: a token is valid when its record exists
// and its persisted expiry has not passed.
type SessionUsecase interface {
	// ValidateToken resolves a session token to the user ID it was issued
	// for. Returns TokenNotFound when no record exists and TokenExpired when
	// the record's expiry has passed.
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}
