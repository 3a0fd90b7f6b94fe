// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"passport/internal/domain/entity"
	"passport/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
// Address records are owned by exactly one user; ownership membership lives on
// the User record and is mutated there.
type AddressRepository interface {
	// Create persists a new address for an owner.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByIDs retrieves all addresses matching the given ids. Missing ids are
	// silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Address, error)

	// DeleteByIDs removes all addresses matching the given ids.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error

	// DeleteByUserID removes every address owned by the given user. Used when
	// an account is deleted.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
