package model

import (
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionTokenModel is the BSON document for an issued session token.
type SessionTokenModel struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Token     string    `bson:"access_token"`
	ExpiresAt time.Time `bson:"expiry"`
	CreatedAt time.Time `bson:"created_at"`
}

// FromSessionTokenDomain converts a domain entity into its BSON document.
func FromSessionTokenDomain(token *entity.SessionToken) *SessionTokenModel {
	return &SessionTokenModel{
		ID:        token.ID.String(),
		UserID:    token.UserID.String(),
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
}

// ToSessionTokenDomain converts a BSON document into the domain entity.
func ToSessionTokenDomain(m *SessionTokenModel) (*entity.SessionToken, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}

	return &entity.SessionToken{
		ID:        id,
		UserID:    userID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

// ResetTokenModel is the BSON document for an outstanding password reset token.
type ResetTokenModel struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Token     string    `bson:"token"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

// FromResetTokenDomain converts a domain entity into its BSON document.
func FromResetTokenDomain(token *entity.PasswordResetToken) *ResetTokenModel {
	return &ResetTokenModel{
		ID:        token.ID.String(),
		UserID:    token.UserID.String(),
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
}

// ToResetTokenDomain converts a BSON document into the domain entity.
func ToResetTokenDomain(m *ResetTokenModel) (*entity.PasswordResetToken, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}

	return &entity.PasswordResetToken{
		ID:        id,
		UserID:    userID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}, nil
}
