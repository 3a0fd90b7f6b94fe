package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "passport/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func TestTokenSweeper_Sweep(t *testing.T) {
	sessionTokenRepo := mockRepo.NewMockSessionTokenRepository(t)
	resetTokenRepo := mockRepo.NewMockResetTokenRepository(t)

	sweeper := &tokenSweeper{
		sessionTokenRepo: sessionTokenRepo,
		resetTokenRepo:   resetTokenRepo,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	sessionTokenRepo.EXPECT().DeleteExpired(mock.Anything).Return(int64(3), nil)
	resetTokenRepo.EXPECT().DeleteExpired(mock.Anything).Return(int64(1), nil)

	sweeper.sweep()
}

func TestTokenSweeper_Sweep_SessionFailureStillPrunesResets(t *testing.T) {
	sessionTokenRepo := mockRepo.NewMockSessionTokenRepository(t)
	resetTokenRepo := mockRepo.NewMockResetTokenRepository(t)

	sweeper := &tokenSweeper{
		sessionTokenRepo: sessionTokenRepo,
		resetTokenRepo:   resetTokenRepo,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	sessionTokenRepo.EXPECT().
		DeleteExpired(mock.Anything).
		Return(int64(0), errors.New("connection reset"))
	resetTokenRepo.EXPECT().DeleteExpired(mock.Anything).Return(int64(0), nil)

	sweeper.sweep()
}
