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
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service          usecase.SessionUsecase
	sessionTokenRepo *mockRepo.MockSessionTokenRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	sessionTokenRepo := mockRepo.NewMockSessionTokenRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSessionService(SessionServiceParams{
		SessionTokenRepo: sessionTokenRepo,
		Logger:           logger,
	})

	return sessionServiceFixtures{
		service:          service,
		sessionTokenRepo: sessionTokenRepo,
	}
}

func TestSessionService_ValidateToken_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	record := &entity.SessionToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     "valid-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.sessionTokenRepo.EXPECT().FindByToken(ctx, "valid-token").Return(record, nil)

	got, err := fx.service.ValidateToken(ctx, "valid-token")

	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestSessionService_ValidateToken_NotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.sessionTokenRepo.EXPECT().
		FindByToken(ctx, "unknown-token").
		Return(nil, repository.ErrSessionTokenNotFound)

	got, err := fx.service.ValidateToken(ctx, "unknown-token")

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenNotFound))
}

func TestSessionService_ValidateToken_Expired(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	record := &entity.SessionToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.sessionTokenRepo.EXPECT().FindByToken(ctx, "stale-token").Return(record, nil)

	got, err := fx.service.ValidateToken(ctx, "stale-token")

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestSessionToken_Expired_InclusiveBoundary(t *testing.T) {
	now := time.Now()
	token := &entity.SessionToken{ExpiresAt: now}

	assert.True(t, token.Expired(now))
	assert.False(t, token.Expired(now.Add(-time.Nanosecond)))
}

func TestPasswordResetToken_Expired_ExclusiveBoundary(t *testing.T) {
	now := time.Now()
	token := &entity.PasswordResetToken{ExpiresAt: now}

	assert.False(t, token.Expired(now))
	assert.True(t, token.Expired(now.Add(time.Nanosecond)))
}
