package model

import (
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressModel is the BSON document for an address record.
type AddressModel struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Address   string    `bson:"address"`
	City      string    `bson:"city"`
	State     string    `bson:"state"`
	Pincode   string    `bson:"pincode"`
	Phone     string    `bson:"phone"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// FromAddressDomain converts a domain entity into its BSON document.
func FromAddressDomain(address *entity.Address) *AddressModel {
	return &AddressModel{
		ID:        address.ID.String(),
		UserID:    address.UserID.String(),
		Address:   address.Address,
		City:      address.City,
		State:     address.State,
		Pincode:   address.Pincode,
		Phone:     address.Phone,
		CreatedAt: address.CreatedAt,
		UpdatedAt: address.UpdatedAt,
	}
}

// ToAddressDomain converts a BSON document into the domain entity.
func ToAddressDomain(m *AddressModel) (*entity.Address, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}

	return &entity.Address{
		ID:        id,
		UserID:    userID,
		Address:   m.Address,
		City:      m.City,
		State:     m.State,
		Pincode:   m.Pincode,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
