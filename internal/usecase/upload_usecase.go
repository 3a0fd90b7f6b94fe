package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Upload storage flags.
const (
	UploadFlagOnline = "online"
	UploadFlagLocal  = "local"
)

// UploadProfileImageInput defines the data required to store a profile image.
type UploadProfileImageInput struct {
	UserID      uuid.UUID
	Flag        string
	FileName    string
	ContentType string
	Content     io.Reader
}

// UploadProfileImageOutput returns the stored image location: a URL for
// online storage, a filesystem path for local storage.
type UploadProfileImageOutput struct {
	Location string
}

// UploadUsecase defines profile image upload.
type UploadUsecase interface {
	// UploadProfileImage stores the image under the backend selected by the
	// flag. Any flag other than "online" or "local" is a validation error.
	UploadProfileImage(ctx context.Context, input *UploadProfileImageInput) (*UploadProfileImageOutput, error)
}
