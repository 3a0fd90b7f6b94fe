package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/mongo/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const resetTokenCollection = "password_reset_tokens"

// resetTokenRepository implements the repository.ResetTokenRepository
// interface.
type resetTokenRepository struct {
	db *mongo.Database
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(ctx context.Context, logger *slog.Logger, db *mongo.Database) (repository.ResetTokenRepository, error) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
		},
	}

	if _, err := db.Collection(resetTokenCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Error("Failed to create reset token indexes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create reset token indexes")
	}

	return &resetTokenRepository{db: db}, nil
}

// Create persists a new reset token record.
func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}

	if _, err := repo.db.Collection(resetTokenCollection).InsertOne(ctx, model.FromResetTokenDomain(token)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset token")
	}

	return nil
}

// FindByToken retrieves a reset token record by its exact token value.
func (repo *resetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var m model.ResetTokenModel
	if err := repo.db.Collection(resetTokenCollection).FindOne(ctx, bson.M{"token": token}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find reset token")
	}

	record, err := model.ToResetTokenDomain(&m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map reset token document")
	}

	return record, nil
}

// DeleteByToken removes a reset token record, consuming it.
func (repo *resetTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	result, err := repo.db.Collection(resetTokenCollection).DeleteOne(ctx, bson.M{"token": token})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete reset token")
	}
	if result.DeletedCount == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

// DeleteExpired prunes reset token records whose expiry has passed.
func (repo *resetTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := repo.db.Collection(resetTokenCollection).DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now()}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to prune reset tokens")
	}

	return result.DeletedCount, nil
}
