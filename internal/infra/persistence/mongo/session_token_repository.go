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

const sessionTokenCollection = "session_tokens"

// sessionTokenRepository implements the repository.SessionTokenRepository
// interface. Expiry is judged by the caller against the persisted timestamp,
// so FindByToken does not filter on expiry.
type sessionTokenRepository struct {
	db *mongo.Database
}

// NewSessionTokenRepository is the constructor for sessionTokenRepository.
func NewSessionTokenRepository(ctx context.Context, logger *slog.Logger, db *mongo.Database) (repository.SessionTokenRepository, error) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "access_token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "expiry", Value: 1}},
		},
	}

	if _, err := db.Collection(sessionTokenCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Error("Failed to create session token indexes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session token indexes")
	}

	return &sessionTokenRepository{db: db}, nil
}

// Create persists a new session token record.
func (repo *sessionTokenRepository) Create(ctx context.Context, token *entity.SessionToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}

	if _, err := repo.db.Collection(sessionTokenCollection).InsertOne(ctx, model.FromSessionTokenDomain(token)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session token")
	}

	return nil
}

// FindByToken retrieves a session token record by its exact token value.
func (repo *sessionTokenRepository) FindByToken(ctx context.Context, token string) (*entity.SessionToken, error) {
	var m model.SessionTokenModel
	if err := repo.db.Collection(sessionTokenCollection).FindOne(ctx, bson.M{"access_token": token}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSessionTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session token")
	}

	record, err := model.ToSessionTokenDomain(&m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map session token document")
	}

	return record, nil
}

// DeleteExpired prunes session token records whose expiry has passed.
func (repo *sessionTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := repo.db.Collection(sessionTokenCollection).DeleteMany(ctx, bson.M{"expiry": bson.M{"$lte": time.Now()}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to prune session tokens")
	}

	return result.DeletedCount, nil
}
