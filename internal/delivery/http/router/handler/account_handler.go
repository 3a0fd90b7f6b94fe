// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the payload of the registration endpoint.
type registerRequest struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
}

// loginRequest is the payload of the login endpoint.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the outward shape of an account. The password hash never
// leaves the service.
type userResponse struct {
	ID         string             `json:"id"`
	Username   string             `json:"username"`
	Email      string             `json:"email"`
	FirstName  string             `json:"firstname"`
	LastName   string             `json:"lastname"`
	AddressIDs []string           `json:"addressIds"`
	Addresses  []*addressResponse `json:"addresses,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

type addressResponse struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

func toUserResponse(user *entity.User) *userResponse {
	addressIDs := make([]string, 0, len(user.AddressIDs))
	for _, id := range user.AddressIDs {
		addressIDs = append(addressIDs, id.String())
	}

	var addresses []*addressResponse
	for _, address := range user.Addresses {
		addresses = append(addresses, toAddressResponse(address))
	}

	return &userResponse{
		ID:         user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		AddressIDs: addressIDs,
		Addresses:  addresses,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func toAddressResponse(address *entity.Address) *addressResponse {
	return &addressResponse{
		ID:      address.ID.String(),
		Address: address.Address,
		City:    address.City,
		State:   address.State,
		Pincode: address.Pincode,
		Phone:   address.Phone,
	}
}

// authenticatedUserID reads the user ID set by the auth middleware.
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("missing authenticated user id")
	}

	return userID, nil
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	// The confirmation check happens at the boundary; the core never sees
	// the confirmation value.
	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch.WrapMessage("registration password confirmation failed")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login handles the user login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token": output.AccessToken,
		"expires_at":   output.ExpiresAt,
	}, "Login successful")
}

// GetUser handles the request for the authenticated user's account data.
func (h *AccountHandler) GetUser(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}

// DeleteUser handles the request to delete the authenticated user's account.
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted successfully"}, "User deleted successfully")
}

// GetUserByID handles the by-id account lookup with populated addresses.
func (h *AccountHandler) GetUserByID(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid user id")
	}

	user, err := h.uc.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}

// ListUsers handles the paginated account listing.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		return domainerrors.ErrInvalidPage.WrapMessage("page is not a number")
	}

	users, err := h.uc.ListUsers(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	list := make([]*userResponse, 0, len(users))
	for _, user := range users {
		list = append(list, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, list, "Users retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
