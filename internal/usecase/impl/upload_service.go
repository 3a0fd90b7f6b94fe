package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storages *service.FileStorages
	logger   *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storages *service.FileStorages
	Logger   *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		storages: params.Storages,
		logger:   params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadProfileImage stores the image under the backend selected by the flag.
func (srv *uploadService) UploadProfileImage(ctx context.Context, input *usecase.UploadProfileImageInput) (*usecase.UploadProfileImageOutput, error) {
	var storage service.FileStorage

	switch input.Flag {
	case usecase.UploadFlagOnline:
		storage = srv.storages.Online
		if storage == nil {
			return nil, domainerrors.ErrInternalError.WrapMessage("online storage is not configured")
		}
	case usecase.UploadFlagLocal:
		storage = srv.storages.Local
	default:
		return nil, domainerrors.ErrInvalidUploadFlag.WrapMessage("unknown upload flag " + input.Flag)
	}

	// Object keys are randomized so concurrent uploads never collide; the
	// original file name only contributes its extension.
	key := fmt.Sprintf("profile_images/%s/%s%s", input.UserID, uuid.NewString(), path.Ext(input.FileName))

	location, err := storage.Save(ctx, key, input.Content, input.ContentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store profile image", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store profile image")
	}

	srv.log(ctx).Debug("Profile image stored", slog.Any("userID", input.UserID), slog.String("location", location))

	return &usecase.UploadProfileImageOutput{Location: location}, nil
}
