package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/http/response"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// addAddressRequest is the payload of the address creation endpoint.
type addAddressRequest struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

// removeAddressesRequest is the payload of the address removal endpoint.
type removeAddressesRequest struct {
	AddressIDs []string `json:"addressIds" validate:"required,min=1"`
}

// AddressHandler holds dependencies for address-related handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddAddress handles the request to attach an address to the authenticated user.
func (h *AddressHandler) AddAddress(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var input addAddressRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.AddAddress(c.Request().Context(), &usecase.AddAddressInput{
		UserID:  userID,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Pincode: input.Pincode,
		Phone:   input.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address), "Address added successfully")
}

// RemoveAddresses handles the request to detach addresses from the authenticated user.
func (h *AddressHandler) RemoveAddresses(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var input removeAddressesRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address removal input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	addressIDs := make([]uuid.UUID, 0, len(input.AddressIDs))
	for _, raw := range input.AddressIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrInvalidAddressIDs.WrapMessage("address id is not a valid uuid")
		}
		addressIDs = append(addressIDs, id)
	}

	if err := h.uc.RemoveAddresses(c.Request().Context(), &usecase.RemoveAddressesInput{
		UserID:     userID,
		AddressIDs: addressIDs,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Addresses removed successfully"}, "Addresses removed successfully")
}
