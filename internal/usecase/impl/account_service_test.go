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

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	userRepo         *mockRepo.MockUserRepository
	addressRepo      *mockRepo.MockAddressRepository
	sessionTokenRepo *mockRepo.MockSessionTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	mailer           *mockSvc.MockMailer
	publisher        *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	sessionTokenRepo := mockRepo.NewMockSessionTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		UserRepo:         userRepo,
		AddressRepo:      addressRepo,
		SessionTokenRepo: sessionTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Mailer:           mailer,
		Publisher:        publisher,
		Logger:           logger,
	})

	return accountServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		addressRepo:      addressRepo,
		sessionTokenRepo: sessionTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		mailer:           mailer,
		publisher:        publisher,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "Password123!",
		FirstName: "Test",
		LastName:  "User",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.mailer.EXPECT().SendWelcomeEmail(ctx, input.Email).Return(nil)

	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "testuser",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRegistrationFailed))
}

func TestAccountService_Register_WelcomeEmailFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.mailer.EXPECT().
		SendWelcomeEmail(ctx, input.Email).
		Return(errors.New("smtp unreachable"))

	// The user record already committed, yet the operation reports failure
	// and no event is published.
	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	fx.publisher.AssertNotCalled(t, "PublishAccountEvent", mock.Anything, mock.Anything)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "testuser",
		Password: "Password123!",
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}
	expiresAt := time.Now().Add(time.Hour)

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true, nil)
	fx.tokenService.EXPECT().
		SignSessionToken(user.ID).
		Return(&service.SignedToken{Value: "signed-token", ExpiresAt: expiresAt}, nil)

	fx.sessionTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SessionToken")).
		Run(func(ctx context.Context, record *entity.SessionToken) {
			assert.Equal(t, user.ID, record.UserID)
			assert.Equal(t, "signed-token", record.Token)
			assert.Equal(t, expiresAt, record.ExpiresAt)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "ghost", Password: "whatever"}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "testuser", Password: "wrong"}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false, nil)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.sessionTokenRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_GetUser_DeletedAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_GetUserByID_PopulatesAddresses(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	user := &entity.User{
		ID:         userID,
		Username:   "testuser",
		AddressIDs: []uuid.UUID{addressID},
	}
	addresses := []*entity.Address{
		{ID: addressID, UserID: userID, City: "Taipei"},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.addressRepo.EXPECT().FindByIDs(ctx, user.AddressIDs).Return(addresses, nil)

	got, err := fx.service.GetUserByID(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, addresses, got.Addresses)
}

func TestAccountService_ListUsers_InvalidPage(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	users, err := fx.service.ListUsers(ctx, 0)

	assert.Error(t, err)
	assert.Nil(t, users)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPage))
	fx.userRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_ListUsers_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	page := 2
	users := []*entity.User{
		{ID: uuid.New(), Username: "alpha"},
		{ID: uuid.New(), Username: "beta"},
	}

	fx.userRepo.EXPECT().List(ctx, page, listPageSize).Return(users, nil)

	got, err := fx.service.ListUsers(ctx, page)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestAccountService_DeleteUser_CascadesAddresses(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.addressRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
	fx.userRepo.EXPECT().Delete(ctx, userID).Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Return(nil)

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}

func TestAccountService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	fx.addressRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

func TestAccountService_DeleteUser_PublishFailureIsBestEffort(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.addressRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
	fx.userRepo.EXPECT().Delete(ctx, userID).Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Return(errors.New("broker unavailable"))

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}
