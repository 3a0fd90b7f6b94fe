package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/http/response"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for upload-related handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadProfileImage handles the multipart profile image upload. The flag
// form field selects the backend: "online" yields a URL, "local" a path.
func (h *UploadHandler) UploadProfileImage(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	flag := c.FormValue("flag")
	if flag == "" {
		return domainerrors.ErrInvalidUploadFlag.WrapMessage("flag form field is missing")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("file form field is missing")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	output, err := h.uc.UploadProfileImage(c.Request().Context(), &usecase.UploadProfileImageInput{
		UserID:      userID,
		Flag:        flag,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]string{"imageUrl": output.Location}
	if flag == usecase.UploadFlagLocal {
		data = map[string]string{"imagePath": output.Location}
	}

	return response.Success(c, http.StatusOK, data, "Profile image uploaded successfully")
}
