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

const addressCollection = "addresses"

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *mongo.Database
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(ctx context.Context, logger *slog.Logger, db *mongo.Database) (repository.AddressRepository, error) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
	}

	if _, err := db.Collection(addressCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Error("Failed to create address indexes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create address indexes")
	}

	return &addressRepository{db: db}, nil
}

// Create persists a new address entity to the storage.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	now := time.Now()
	address.CreatedAt = now
	address.UpdatedAt = now

	if _, err := repo.db.Collection(addressCollection).InsertOne(ctx, model.FromAddressDomain(address)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	return nil
}

// FindByID retrieves a single address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var m model.AddressModel
	if err := repo.db.Collection(addressCollection).FindOne(ctx, bson.M{"_id": id.String()}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address")
	}

	address, err := model.ToAddressDomain(&m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map address document")
	}

	return address, nil
}

// FindByIDs retrieves the addresses whose IDs appear in ids. Missing IDs are
// skipped, the caller decides whether absence matters.
func (repo *addressRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Address, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := repo.db.Collection(addressCollection).Find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find addresses")
	}
	defer cursor.Close(ctx)

	var addresses []*entity.Address
	for cursor.Next(ctx) {
		var m model.AddressModel
		if err := cursor.Decode(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode address document")
		}

		address, err := model.ToAddressDomain(&m)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map address document")
		}
		addresses = append(addresses, address)
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate address documents")
	}

	return addresses, nil
}

// DeleteByIDs removes the addresses whose IDs appear in ids.
func (repo *addressRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := repo.db.Collection(addressCollection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete addresses")
	}

	return nil
}

// DeleteByUserID removes all addresses owned by the given user.
func (repo *addressRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if _, err := repo.db.Collection(addressCollection).DeleteMany(ctx, bson.M{"user_id": userID.String()}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user addresses")
	}

	return nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
