package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	userRepo       repository.UserRepository
	resetTokenRepo repository.ResetTokenRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	mailer         service.Mailer
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	ResetTokenRepo repository.ResetTokenRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Mailer         service.Mailer
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		userRepo:       params.UserRepo,
		resetTokenRepo: params.ResetTokenRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		mailer:         params.Mailer,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset issues a reset token for the account owning the email address.
// Outstanding earlier tokens stay valid until their own expiry.
func (srv *passwordResetService) RequestReset(ctx context.Context, email string) (*usecase.RequestResetOutput, error) {
	srv.log(ctx).Info("Starting password reset request", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Password reset request failed", slog.String("email", email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("password reset request failed")
		}

		return nil, errors.Wrap(err, "failed to find user for password reset")
	}

	signed, err := srv.tokenService.SignResetToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign reset token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign reset token")
	}

	record := &entity.PasswordResetToken{
		UserID:    user.ID,
		Token:     signed.Value,
		ExpiresAt: signed.ExpiresAt,
	}
	if err := srv.resetTokenRepo.Create(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to store reset token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store reset token")
	}

	if err := srv.mailer.SendPasswordResetEmail(ctx, user.Email, signed.Value); err != nil {
		srv.log(ctx).Error("Failed to send reset email", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to send reset email")
	}

	srv.log(ctx).Debug("Password reset token issued", slog.Any("userID", user.ID))

	return &usecase.RequestResetOutput{
		ResetToken: signed.Value,
		ExpiresAt:  signed.ExpiresAt,
	}, nil
}

// ResetPassword consumes a reset token and replaces the account's password.
//
// The check order matters: record lookup, signature, expiry, user fetch, hash,
// persist, delete record, confirmation email. Deleting the record after the
// password write means a crash in between leaves the new password in place and
// a replay of the same token fails the lookup.
func (srv *passwordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	srv.log(ctx).Info("Starting password reset verification")

	record, err := srv.resetTokenRepo.FindByToken(ctx, token)
	if err != nil {
		srv.log(ctx).Warn("Password reset verification failed", slog.Any("error", err))

		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return domainerrors.ErrTokenNotFound.WrapMessage("reset token not found")
		}

		return errors.Wrap(err, "failed to find reset token")
	}

	if _, err := srv.tokenService.VerifyResetToken(token); err != nil {
		srv.log(ctx).Warn("Reset token signature check failed", slog.Any("userID", record.UserID), slog.Any("error", err))

		return domainerrors.ErrSignatureInvalid.WrapMessage("reset token signature check failed")
	}

	if record.Expired(time.Now()) {
		return domainerrors.ErrTokenExpired.WrapMessage("reset token expired")
	}

	user, err := srv.userRepo.FindByID(ctx, record.UserID)
	if err != nil {
		srv.log(ctx).Warn("Reset token bound to missing user", slog.Any("userID", record.UserID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("reset token bound to missing user")
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	hashedPassword, err := srv.hasher.Hash(newPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = hashedPassword
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to persist new password", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to persist new password")
	}

	if err := srv.resetTokenRepo.DeleteByToken(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to consume reset token", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to consume reset token")
	}

	if err := srv.mailer.SendPasswordResetSuccessEmail(ctx, user.Email); err != nil {
		srv.log(ctx).Error("Failed to send reset confirmation email", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to send reset confirmation email")
	}

	srv.publishAccountEvent(ctx, service.EventPasswordReset, user)

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

func (srv *passwordResetService) publishAccountEvent(ctx context.Context, eventType string, user *entity.User) {
	event := &service.AccountEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		UserID:    user.ID.String(),
		Email:     user.Email,
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", eventType),
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)
	}
}
