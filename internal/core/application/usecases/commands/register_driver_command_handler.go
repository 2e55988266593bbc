package commands

import (
	"context"

	"transport/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler handles driver registration.
// New drivers start in available status.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
func (h *RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newDriver, err := driver.NewDriver(cmd.DriverID(), cmd.FullName(), cmd.PhoneNumber())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
