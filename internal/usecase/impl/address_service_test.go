package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	userRepo    *mockRepo.MockUserRepository
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAddressService(AddressServiceParams{
		UserRepo:    userRepo,
		AddressRepo: addressRepo,
		Logger:      logger,
	})

	return addressServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		addressRepo: addressRepo,
	}
}

func TestAddressService_AddAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "testuser"}
	input := &usecase.AddAddressInput{
		UserID:  user.ID,
		Address: "1 Main St",
		City:    "Taipei",
		State:   "TW",
		Pincode: "100",
		Phone:   "0912345678",
	}

	addressID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	fx.addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(ctx context.Context, address *entity.Address) {
			address.ID = addressID
		}).
		Return(nil)

	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Contains(t, updated.AddressIDs, addressID)
		}).
		Return(nil)

	address, err := fx.service.AddAddress(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, addressID, address.ID)
	assert.Equal(t, user.ID, address.UserID)
	assert.Equal(t, input.City, address.City)
}

func TestAddressService_AddAddress_UserNotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	input := &usecase.AddAddressInput{UserID: uuid.New(), Address: "1 Main St"}

	fx.userRepo.EXPECT().
		FindByID(ctx, input.UserID).
		Return(nil, repository.ErrUserNotFound)

	address, err := fx.service.AddAddress(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	fx.addressRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddressService_RemoveAddresses_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owned := uuid.New()
	kept := uuid.New()
	user := &entity.User{
		ID:         uuid.New(),
		AddressIDs: []uuid.UUID{owned, kept},
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, []uuid.UUID{kept}, updated.AddressIDs)
		}).
		Return(nil)

	fx.addressRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{owned}).Return(nil)

	err := fx.service.RemoveAddresses(ctx, &usecase.RemoveAddressesInput{
		UserID:     user.ID,
		AddressIDs: []uuid.UUID{owned},
	})

	require.NoError(t, err)
}

func TestAddressService_RemoveAddresses_IgnoresForeignIDs(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owned := uuid.New()
	foreign := uuid.New()
	user := &entity.User{
		ID:         uuid.New(),
		AddressIDs: []uuid.UUID{owned},
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	// Only the owned reference reaches the delete; the foreign id is dropped.
	fx.addressRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{owned}).Return(nil)

	err := fx.service.RemoveAddresses(ctx, &usecase.RemoveAddressesInput{
		UserID:     user.ID,
		AddressIDs: []uuid.UUID{owned, foreign},
	})

	require.NoError(t, err)
}

func TestAddressService_RemoveAddresses_NoneOwned(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	err := fx.service.RemoveAddresses(ctx, &usecase.RemoveAddressesInput{
		UserID:     user.ID,
		AddressIDs: []uuid.UUID{uuid.New()},
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddressService_RemoveAddresses_EmptyInput(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()

	err := fx.service.RemoveAddresses(ctx, &usecase.RemoveAddressesInput{
		UserID: uuid.New(),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAddressIDs))
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
