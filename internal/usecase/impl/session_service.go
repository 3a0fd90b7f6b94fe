package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionTokenRepo repository.SessionTokenRepository
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionTokenRepo repository.SessionTokenRepository
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionTokenRepo: params.SessionTokenRepo,
		logger:           params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ValidateToken resolves a session token to the user ID it was issued for.
// The stored record is the authority: presence and persisted expiry decide
// validity, the signature is not re-checked here.
func (srv *sessionService) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	record, err := srv.sessionTokenRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionTokenNotFound) {
			return uuid.Nil, domainerrors.ErrTokenNotFound.WrapMessage("session token not found")
		}

		srv.log(ctx).Error("Failed to look up session token", slog.Any("error", err))

		return uuid.Nil, errors.Wrap(err, "failed to look up session token")
	}

	if record.Expired(time.Now()) {
		return uuid.Nil, domainerrors.ErrTokenExpired.WrapMessage("session token expired")
	}

	return record.UserID, nil
}
