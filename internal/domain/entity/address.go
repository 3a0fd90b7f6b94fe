// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is the core entity for a postal delivery location.
// Each address is owned by exactly one User and is referenced by id from the
// owner's address list; membership is mutated through the User record.
type Address struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID    uuid.UUID // The ID of the User that owns this address.
	Address   string    // The street address line.
	City      string    // The city name.
	State     string    // The state or province.
	Pincode   string    // The postal code.
	Phone     string    // A contact phone number for this address.
	CreatedAt time.Time // Timestamp of when this address was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
