package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// uploadServiceFixtures holds all test dependencies for upload service tests.
type uploadServiceFixtures struct {
	service usecase.UploadUsecase
	online  *mockSvc.MockFileStorage
	local   *mockSvc.MockFileStorage
}

func createTestUploadService(t *testing.T) uploadServiceFixtures {
	online := mockSvc.NewMockFileStorage(t)
	local := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUploadService(UploadServiceParams{
		Storages: &service.FileStorages{Online: online, Local: local},
		Logger:   logger,
	})

	return uploadServiceFixtures{
		service: svc,
		online:  online,
		local:   local,
	}
}

func TestUploadService_UploadProfileImage_Online(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	userID := uuid.New()
	content := strings.NewReader("fake image bytes")

	fx.online.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), content, "image/png").
		Run(func(ctx context.Context, key string, _ io.Reader, _ string) {
			assert.True(t, strings.HasPrefix(key, "profile_images/"+userID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".png"))
		}).
		Return("https://cdn.example.com/profile_images/abc.png", nil)

	output, err := fx.service.UploadProfileImage(ctx, &usecase.UploadProfileImageInput{
		UserID:      userID,
		Flag:        usecase.UploadFlagOnline,
		FileName:    "avatar.png",
		ContentType: "image/png",
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profile_images/abc.png", output.Location)
	fx.local.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_UploadProfileImage_Local(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	userID := uuid.New()
	content := strings.NewReader("fake image bytes")

	fx.local.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), content, "image/jpeg").
		Return("/var/uploads/profile_images/abc.jpg", nil)

	output, err := fx.service.UploadProfileImage(ctx, &usecase.UploadProfileImageInput{
		UserID:      userID,
		Flag:        usecase.UploadFlagLocal,
		FileName:    "avatar.jpg",
		ContentType: "image/jpeg",
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "/var/uploads/profile_images/abc.jpg", output.Location)
	fx.online.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_UploadProfileImage_UnknownFlag(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()

	output, err := fx.service.UploadProfileImage(ctx, &usecase.UploadProfileImageInput{
		UserID:   uuid.New(),
		Flag:     "ftp",
		FileName: "avatar.png",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidUploadFlag))
}

func TestUploadService_UploadProfileImage_OnlineNotConfigured(t *testing.T) {
	local := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUploadService(UploadServiceParams{
		Storages: &service.FileStorages{Online: nil, Local: local},
		Logger:   logger,
	})

	output, err := svc.UploadProfileImage(context.Background(), &usecase.UploadProfileImageInput{
		UserID:   uuid.New(),
		Flag:     usecase.UploadFlagOnline,
		FileName: "avatar.png",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}
