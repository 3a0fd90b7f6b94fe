package service

import (
	"time"

	"github.com/google/uuid"
)

// SignedToken is the result of signing a token: the opaque string handed to
// the client plus the absolute expiry the store persists alongside it.
type SignedToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and verifying the signed
// token values used for sessions and password resets. The two token kinds use
// separate signing keys and separate TTLs.
//
// For session tokens the signature exists for tamper-resistance only; store
// lookup is the authority and no independent re-check happens at validation.
// Reset tokens ARE re-verified cryptographically during the reset protocol.
type TokenService interface {
	// SignSessionToken creates a signed session token bound to the user id,
	// expiring one session TTL from now.
	SignSessionToken(userID uuid.UUID) (*SignedToken, error)

	// SignResetToken creates a signed password reset token bound to the user
	// id, expiring one reset TTL from now.
	SignResetToken(userID uuid.UUID) (*SignedToken, error)

	// VerifyResetToken checks the reset token's signature against the reset
	// signing key and returns the embedded user id. It fails on a bad or
	// foreign signature regardless of what the store says.
	VerifyResetToken(token string) (uuid.UUID, error)

	// SessionTokenDuration returns the configured session TTL.
	SessionTokenDuration() time.Duration

	// ResetTokenDuration returns the configured reset TTL.
	ResetTokenDuration() time.Duration
}
