// Package model contains the BSON document definitions for the persistence
// layer and the converters between them and the domain entities.
package model

import (
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel is the BSON document for a user record. Entity ids are stored as
// canonical UUID strings so documents stay readable in the shell.
type UserModel struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	FirstName    string    `bson:"firstname"`
	LastName     string    `bson:"lastname"`
	AddressIDs   []string  `bson:"addresses"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// FromUserDomain converts a domain entity into its BSON document.
func FromUserDomain(user *entity.User) *UserModel {
	addressIDs := make([]string, 0, len(user.AddressIDs))
	for _, id := range user.AddressIDs {
		addressIDs = append(addressIDs, id.String())
	}

	return &UserModel{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		AddressIDs:   addressIDs,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// ToUserDomain converts a BSON document into the domain entity.
func ToUserDomain(m *UserModel) (*entity.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	addressIDs := make([]uuid.UUID, 0, len(m.AddressIDs))
	for _, raw := range m.AddressIDs {
		addressID, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		addressIDs = append(addressIDs, addressID)
	}

	return &entity.User{
		ID:           id,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		AddressIDs:   addressIDs,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// IDStrings converts a slice of uuids into their string forms for bson filters.
func IDStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
