// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listPageSize is the fixed page size of the user listing.
const listPageSize = 10

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo         repository.UserRepository
	addressRepo      repository.AddressRepository
	sessionTokenRepo repository.SessionTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	mailer           service.Mailer
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	AddressRepo      repository.AddressRepository
	SessionTokenRepo repository.SessionTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.Mailer
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:         params.UserRepo,
		addressRepo:      params.AddressRepo,
		sessionTokenRepo: params.SessionTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mailer:           params.Mailer,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// publishEvent publishes an account event. Publishing is best-effort: a
// failure is logged and never fails the originating operation.
func (srv *accountService) publishEvent(ctx context.Context, eventType string, userID uuid.UUID, email string) {
	event := &service.AccountEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		UserID:    userID.String(),
		Email:     email,
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", eventType),
			slog.Any("userID", userID),
			slog.Any("error", err),
		)
	}
}

// Register orchestrates the complete user registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		// Uniqueness is enforced by the store. The violation surfaces as a
		// generic registration failure, not as a field-level hint.
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrRegistrationFailed.WrapMessage("username or email already taken")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	// Email delivery failure aborts the use case even though the user record
	// already committed. The inconsistency window is a carried-over behavior.
	if err := srv.mailer.SendWelcomeEmail(ctx, newUser.Email); err != nil {
		srv.log(ctx).Error("Failed to send welcome email", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to send welcome email")
	}

	srv.publishEvent(ctx, service.EventUserRegistered, newUser.ID, newUser.Email)

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the credential check and session token issuance.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	match, err := srv.hasher.Check(input.Password, user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Failed to check password during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check password during login")
	}
	if !match {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	signed, err := srv.tokenService.SignSessionToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign session token")
	}

	// Each login issues an independent token record. Earlier tokens for the
	// same user stay valid until their own expiry.
	record := &entity.SessionToken{
		UserID:    user.ID,
		Token:     signed.Value,
		ExpiresAt: signed.ExpiresAt,
	}
	if err := srv.sessionTokenRepo.Create(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to store session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: signed.Value,
		ExpiresAt:   signed.ExpiresAt,
		User:        user,
	}, nil
}

// GetUser retrieves the account bound to an authenticated session.
func (srv *accountService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to get user", slog.Any("userID", userID), slog.Any("error", err))

		// A valid token bound to a deleted account resolves here.
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to get user")
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// GetUserByID retrieves an account with its address records populated.
func (srv *accountService) GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	addresses, err := srv.addressRepo.FindByIDs(ctx, user.AddressIDs)
	if err != nil {
		srv.log(ctx).Error("Failed to load user addresses", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user addresses")
	}
	user.Addresses = addresses

	return user, nil
}

// ListUsers retrieves the page-th page of accounts, 1-indexed.
func (srv *accountService) ListUsers(ctx context.Context, page int) ([]*entity.User, error) {
	if page <= 0 {
		return nil, domainerrors.ErrInvalidPage.WrapMessage("page must be positive")
	}

	users, err := srv.userRepo.List(ctx, page, listPageSize)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Int("page", page), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// DeleteUser removes an account and cascades its owned address records.
// Session tokens are not cascaded; a surviving token resolves to UserNotFound.
func (srv *accountService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("failed to delete user")
		}

		return errors.Wrap(err, "failed to find user for deletion")
	}

	if err := srv.addressRepo.DeleteByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete user addresses", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user addresses")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	srv.publishEvent(ctx, service.EventUserDeleted, userID, user.Email)

	srv.log(ctx).Info("User deleted", slog.Any("userID", userID))

	return nil
}
