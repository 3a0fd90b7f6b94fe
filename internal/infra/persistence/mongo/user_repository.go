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

const userCollection = "users"

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *mongo.Database
}

// NewUserRepository is the constructor for userRepository. It bootstraps the
// uniqueness indexes the registration flow relies on: the store, not the core,
// enforces username/email uniqueness.
func NewUserRepository(ctx context.Context, logger *slog.Logger, db *mongo.Database) (repository.UserRepository, error) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := db.Collection(userCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Error("Failed to create user indexes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user indexes")
	}

	return &userRepository{db: db}, nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

// FindByUsername retrieves a single user by their unique username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"username": username})
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

// List retrieves a page of users in insertion order.
func (repo *userRepository) List(ctx context.Context, page, pageSize int) ([]*entity.User, error) {
	skip := int64(page-1) * int64(pageSize)

	cursor, err := repo.db.Collection(userCollection).Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: 1}}).
			SetSkip(skip).
			SetLimit(int64(pageSize)),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	for cursor.Next(ctx) {
		var m model.UserModel
		if err := cursor.Decode(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode user document")
		}

		user, err := model.ToUserDomain(&m)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map user document")
		}
		users = append(users, user)
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate user documents")
	}

	return users, nil
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := repo.db.Collection(userCollection).InsertOne(ctx, model.FromUserDomain(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// Update modifies an existing user entity in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	m := model.FromUserDomain(user)
	result, err := repo.db.Collection(userCollection).ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by their unique ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.db.Collection(userCollection).DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if result.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var m model.UserModel
	if err := repo.db.Collection(userCollection).FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	user, err := model.ToUserDomain(&m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map user document")
	}

	return user, nil
}
