package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		userRepo:    params.UserRepo,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddAddress creates an address record and appends its reference to the
// owning user. The two writes are independent; the record is created first so
// a failure never leaves a dangling reference.
func (srv *addressService) AddAddress(ctx context.Context, input *usecase.AddAddressInput) (*entity.Address, error) {
	srv.log(ctx).Debug("Adding address", slog.Any("userID", input.UserID))

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to add address")
		}

		return nil, errors.Wrap(err, "failed to find user for address creation")
	}

	address := &entity.Address{
		UserID:  user.ID,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Pincode: input.Pincode,
		Phone:   input.Phone,
	}

	if err := srv.addressRepo.Create(ctx, address); err != nil {
		srv.log(ctx).Error("Failed to create address", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create address")
	}

	user.AddressIDs = append(user.AddressIDs, address.ID)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to attach address to user", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to attach address to user")
	}

	srv.log(ctx).Debug("Address added", slog.Any("userID", user.ID), slog.Any("addressID", address.ID))

	return address, nil
}

// RemoveAddresses detaches the given address references from the user, then
// deletes the address records. The reference update commits first; ids the
// user never owned are ignored.
func (srv *addressService) RemoveAddresses(ctx context.Context, input *usecase.RemoveAddressesInput) error {
	if len(input.AddressIDs) == 0 {
		return domainerrors.ErrInvalidAddressIDs.WrapMessage("no address ids given")
	}

	srv.log(ctx).Debug("Removing addresses", slog.Any("userID", input.UserID), slog.Int("count", len(input.AddressIDs)))

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("failed to remove addresses")
		}

		return errors.Wrap(err, "failed to find user for address removal")
	}

	removed := user.RemoveAddressRefs(input.AddressIDs)
	if len(removed) == 0 {
		return domainerrors.ErrAddressNotFound.WrapMessage("no owned address matched the given ids")
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to detach addresses from user", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to detach addresses from user")
	}

	if err := srv.addressRepo.DeleteByIDs(ctx, removed); err != nil {
		srv.log(ctx).Error("Failed to delete address records", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete address records")
	}

	srv.log(ctx).Debug("Addresses removed", slog.Any("userID", user.ID), slog.Int("removed", len(removed)))

	return nil
}
