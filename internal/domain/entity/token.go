// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionToken represents a bearer credential proving a successful login.
// The token string is a signed JWT, but the stored record is the authority:
// a token is valid iff it exists in the store and is unexpired. Multiple
// concurrent tokens per user are permitted.
type SessionToken struct {
	ID        uuid.UUID // The unique ID for this token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	Token     string    // The opaque signed token value handed to the client.
	ExpiresAt time.Time // Absolute expiry. Validity is computed at check time, never stored.
	CreatedAt time.Time // Timestamp of when this session was issued (i.e., the login time).
}

// Expired reports whether the token is no longer valid at the given instant.
// The boundary is inclusive: a token is expired exactly at its expiry time.
func (t *SessionToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// PasswordResetToken represents a single-use, short-lived credential proving
// email ownership for password rotation. Once consumed or expired the record
// is deleted and can never again authorize a reset.
type PasswordResetToken struct {
	ID        uuid.UUID // The unique ID for this token record.
	UserID    uuid.UUID // Links this reset request to the User it belongs to.
	Token     string    // The signed token value, also embedded in the reset email link.
	ExpiresAt time.Time // Absolute expiry, persisted separately from the token's own claim.
	CreatedAt time.Time // Timestamp of when the reset was requested.
}

// Expired reports whether the reset token is past its persisted expiry.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
