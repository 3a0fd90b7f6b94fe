package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passwordResetServiceFixtures holds all test dependencies for password reset tests.
type passwordResetServiceFixtures struct {
	service        usecase.PasswordResetUsecase
	userRepo       *mockRepo.MockUserRepository
	resetTokenRepo *mockRepo.MockResetTokenRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	mailer         *mockSvc.MockMailer
	publisher      *mockSvc.MockEventPublisher
}

func createTestPasswordResetService(t *testing.T) passwordResetServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	resetTokenRepo := mockRepo.NewMockResetTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPasswordResetService(PasswordResetServiceParams{
		UserRepo:       userRepo,
		ResetTokenRepo: resetTokenRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Mailer:         mailer,
		Publisher:      publisher,
		Logger:         logger,
	})

	return passwordResetServiceFixtures{
		service:        service,
		userRepo:       userRepo,
		resetTokenRepo: resetTokenRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		mailer:         mailer,
		publisher:      publisher,
	}
}

func TestPasswordResetService_RequestReset_Success(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	expiresAt := time.Now().Add(15 * time.Minute)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenService.EXPECT().
		SignResetToken(user.ID).
		Return(&service.SignedToken{Value: "reset-token", ExpiresAt: expiresAt}, nil)

	fx.resetTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
		Run(func(ctx context.Context, record *entity.PasswordResetToken) {
			assert.Equal(t, user.ID, record.UserID)
			assert.Equal(t, "reset-token", record.Token)
			assert.Equal(t, expiresAt, record.ExpiresAt)
		}).
		Return(nil)

	fx.mailer.EXPECT().SendPasswordResetEmail(ctx, user.Email, "reset-token").Return(nil)

	output, err := fx.service.RequestReset(ctx, user.Email)

	require.NoError(t, err)
	assert.Equal(t, "reset-token", output.ResetToken)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestPasswordResetService_RequestReset_UnknownEmail(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.RequestReset(ctx, "ghost@example.com")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPasswordResetService_RequestReset_EmailFailureAborts(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	expiresAt := time.Now().Add(15 * time.Minute)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenService.EXPECT().
		SignResetToken(user.ID).
		Return(&service.SignedToken{Value: "reset-token", ExpiresAt: expiresAt}, nil)
	fx.resetTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
		Return(nil)
	fx.mailer.EXPECT().
		SendPasswordResetEmail(ctx, user.Email, "reset-token").
		Return(errors.New("smtp unreachable"))

	output, err := fx.service.RequestReset(ctx, user.Email)

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestPasswordResetService_ResetPassword_Success(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "old_hash",
	}
	record := &entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     "reset-token",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	fx.resetTokenRepo.EXPECT().FindByToken(ctx, "reset-token").Return(record, nil)
	fx.tokenService.EXPECT().VerifyResetToken("reset-token").Return(user.ID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, "new_hash", updated.PasswordHash)
		}).
		Return(nil)

	fx.resetTokenRepo.EXPECT().DeleteByToken(ctx, "reset-token").Return(nil)
	fx.mailer.EXPECT().SendPasswordResetSuccessEmail(ctx, user.Email).Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Return(nil)

	err := fx.service.ResetPassword(ctx, "reset-token", "NewPassword123!")

	require.NoError(t, err)
}

func TestPasswordResetService_ResetPassword_TokenNotFound(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()

	fx.resetTokenRepo.EXPECT().
		FindByToken(ctx, "unknown-token").
		Return(nil, repository.ErrResetTokenNotFound)

	err := fx.service.ResetPassword(ctx, "unknown-token", "NewPassword123!")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenNotFound))
}

func TestPasswordResetService_ResetPassword_BadSignature(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	record := &entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Token:     "forged-token",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	fx.resetTokenRepo.EXPECT().FindByToken(ctx, "forged-token").Return(record, nil)
	fx.tokenService.EXPECT().
		VerifyResetToken("forged-token").
		Return(uuid.Nil, errors.New("signature is invalid"))

	err := fx.service.ResetPassword(ctx, "forged-token", "NewPassword123!")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSignatureInvalid))
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPasswordResetService_ResetPassword_Expired(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	record := &entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.resetTokenRepo.EXPECT().FindByToken(ctx, "stale-token").Return(record, nil)
	fx.tokenService.EXPECT().VerifyResetToken("stale-token").Return(record.UserID, nil)

	err := fx.service.ResetPassword(ctx, "stale-token", "NewPassword123!")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	fx.resetTokenRepo.AssertNotCalled(t, "DeleteByToken", mock.Anything, mock.Anything)
}

func TestPasswordResetService_ResetPassword_Replay(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()

	// The record was consumed by a previous reset, so a replay of the same
	// token fails the lookup before any cryptographic check.
	fx.resetTokenRepo.EXPECT().
		FindByToken(ctx, "consumed-token").
		Return(nil, repository.ErrResetTokenNotFound)

	err := fx.service.ResetPassword(ctx, "consumed-token", "NewPassword123!")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenNotFound))
	fx.tokenService.AssertNotCalled(t, "VerifyResetToken", mock.Anything)
}

func TestPasswordResetService_ResetPassword_ConfirmationEmailFailure(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "old_hash",
	}
	record := &entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     "reset-token",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	fx.resetTokenRepo.EXPECT().FindByToken(ctx, "reset-token").Return(record, nil)
	fx.tokenService.EXPECT().VerifyResetToken("reset-token").Return(user.ID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.resetTokenRepo.EXPECT().DeleteByToken(ctx, "reset-token").Return(nil)
	fx.mailer.EXPECT().
		SendPasswordResetSuccessEmail(ctx, user.Email).
		Return(errors.New("smtp unreachable"))

	// The password already rotated and the token is consumed, but the failed
	// confirmation email still fails the operation.
	err := fx.service.ResetPassword(ctx, "reset-token", "NewPassword123!")

	assert.Error(t, err)
	fx.publisher.AssertNotCalled(t, "PublishAccountEvent", mock.Anything, mock.Anything)
}
