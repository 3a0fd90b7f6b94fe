// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a registered account.
// The password is never stored in plaintext; only the bcrypt hash derived from
// the current password lives on the entity.
type User struct {
	ID           uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Username     string      // Unique login identifier chosen by the user.
	Email        string      // The user's contact email, used for notifications and password reset.
	PasswordHash string      // The bcrypt hash of the current password. Never the plaintext.
	FirstName    string      // The user's given name.
	LastName     string      // The user's family name.
	AddressIDs   []uuid.UUID // References to the Address records owned by this user.
	Addresses    []*Address  // Populated address documents. Only filled on by-id lookups.
	CreatedAt    time.Time   // Timestamp of when this user account was created.
	UpdatedAt    time.Time   // Timestamp of the last modification to this user's data.
}

// OwnsAddress reports whether the given address id is referenced by this user.
func (u *User) OwnsAddress(id uuid.UUID) bool {
	for _, ref := range u.AddressIDs {
		if ref == id {
			return true
		}
	}

	return false
}

// RemoveAddressRefs filters the given address ids out of the user's reference
// list. It returns the ids that were actually present, so the caller knows
// which Address records still need to be deleted.
func (u *User) RemoveAddressRefs(ids []uuid.UUID) []uuid.UUID {
	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	var removed []uuid.UUID
	kept := u.AddressIDs[:0]
	for _, ref := range u.AddressIDs {
		if _, ok := drop[ref]; ok {
			removed = append(removed, ref)

			continue
		}
		kept = append(kept, ref)
	}
	u.AddressIDs = kept

	return removed
}
