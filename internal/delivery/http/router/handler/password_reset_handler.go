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

// forgotPasswordRequest is the payload of the reset request endpoint.
type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// verifyResetPasswordRequest is the payload of the reset verification endpoint.
type verifyResetPasswordRequest struct {
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// PasswordResetHandler holds dependencies for password-reset handlers.
type PasswordResetHandler struct {
	uc     usecase.PasswordResetUsecase
	logger *slog.Logger
}

// NewPasswordResetHandler is the constructor for PasswordResetHandler, injected by Fx.
func NewPasswordResetHandler(uc usecase.PasswordResetUsecase, logger *slog.Logger) *PasswordResetHandler {
	return &PasswordResetHandler{
		uc:     uc,
		logger: logger,
	}
}

// ForgotPassword handles the reset token issuance request. The raw token is
// part of the response in addition to the email delivery.
func (h *PasswordResetHandler) ForgotPassword(c echo.Context) error {
	var input forgotPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RequestReset(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Password reset email sent",
		"token":   output.ResetToken,
	}, "Password reset email sent")
}

// VerifyResetPassword handles the reset consumption request.
func (h *PasswordResetHandler) VerifyResetPassword(c echo.Context) error {
	token := c.Param("passwordResetToken")
	if token == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("reset token is missing")
	}

	var input verifyResetPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch.WrapMessage("reset password confirmation failed")
	}

	if err := h.uc.ResetPassword(c.Request().Context(), token, input.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password reset successfully"}, "Password reset successfully")
}
