// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued session token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// AccountUsecase defines the interface for account-related business
// operations. This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	// Register creates a new account and sends the welcome email.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetUser returns the account bound to an authenticated session.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// GetUserByID returns an account with its address records populated.
	GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ListUsers returns the page-th page of accounts, 1-indexed.
	ListUsers(ctx context.Context, page int) ([]*entity.User, error)

	// DeleteUser removes an account and its owned address records.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
