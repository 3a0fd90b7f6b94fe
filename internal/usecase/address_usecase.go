package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAddressInput defines the data required to attach an address to a user.
type AddAddressInput struct {
	UserID  uuid.UUID
	Address string
	City    string
	State   string
	Pincode string
	Phone   string
}

// RemoveAddressesInput defines the address references to detach from a user.
type RemoveAddressesInput struct {
	UserID     uuid.UUID
	AddressIDs []uuid.UUID
}

// AddressUsecase defines address management for authenticated accounts.
type AddressUsecase interface {
	// AddAddress creates an address record and appends its reference to the
	// owning user.
	AddAddress(ctx context.Context, input *AddAddressInput) (*entity.Address, error)

	// RemoveAddresses detaches the given address references from the user,
	// then deletes the address records.
	RemoveAddresses(ctx context.Context, input *RemoveAddressesInput) error
}
