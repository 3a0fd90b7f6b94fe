package impl

import (
	"context"
	"log/slog"
	"time"

	"passport/internal/domain/repository"

	"go.uber.org/fx"
)

// sweepInterval is how often expired token records are pruned. Expiry is
// logical, enforced at validation time; the sweep only reclaims storage.
const sweepInterval = time.Hour

// tokenSweeper periodically prunes expired session and reset token records.
type tokenSweeper struct {
	sessionTokenRepo repository.SessionTokenRepository
	resetTokenRepo   repository.ResetTokenRepository
	logger           *slog.Logger
	done             chan struct{}
	stopped          chan struct{}
}

// TokenSweeperParams holds dependencies for the token sweeper, injected by Fx.
type TokenSweeperParams struct {
	fx.In

	Lc               fx.Lifecycle
	SessionTokenRepo repository.SessionTokenRepository
	ResetTokenRepo   repository.ResetTokenRepository
	Logger           *slog.Logger
}

// RegisterTokenSweeper starts the pruning loop on application start and stops
// it on shutdown.
func RegisterTokenSweeper(params TokenSweeperParams) {
	sweeper := &tokenSweeper{
		sessionTokenRepo: params.SessionTokenRepo,
		resetTokenRepo:   params.ResetTokenRepo,
		logger:           params.Logger,
		done:             make(chan struct{}),
		stopped:          make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go sweeper.run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(sweeper.done)
			select {
			case <-sweeper.stopped:
			case <-ctx.Done():
			}

			return nil
		},
	})
}

func (s *tokenSweeper) run() {
	defer close(s.stopped)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *tokenSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sessions, err := s.sessionTokenRepo.DeleteExpired(ctx)
	if err != nil {
		s.logger.Error("Failed to prune expired session tokens", slog.Any("error", err))
	}

	resets, err := s.resetTokenRepo.DeleteExpired(ctx)
	if err != nil {
		s.logger.Error("Failed to prune expired reset tokens", slog.Any("error", err))
	}

	if sessions > 0 || resets > 0 {
		s.logger.Info("Pruned expired tokens",
			slog.Int64("session_tokens", sessions),
			slog.Int64("reset_tokens", resets),
		)
	}
}
