package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles full replacement of an order's editable
// fields. The order must already exist; updates never create.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Loads the order, replaces its details, status, assignments and branch, and
// persists the result. Returns ObjectNotFoundError if the order is absent.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(
		cmd.ClientName(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.PickupAt(),
		cmd.DeliveryAt(),
		cmd.CargoType(),
		cmd.CargoWeight(),
		cmd.VehicleType(),
		cmd.Distance(),
	); err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}
	if err = aggregate.AssignVehicle(cmd.Vehicle()); err != nil {
		return err
	}
	if err = aggregate.AssignDriver(cmd.Driver()); err != nil {
		return err
	}
	if err = aggregate.AssignBranch(cmd.Branch()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
