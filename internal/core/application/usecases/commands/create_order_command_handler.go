package commands

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
	"transport/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves branch ownership from the acting user: branch users always create
// orders in their own branch regardless of the submitted branch, admins must
// name the branch explicitly.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Loads the acting user, forces branch ownership for branch users, and
// persists the new order in the requested initial status within a
// transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	branchID, err := resolveOwningBranch(actor.IsAdmin(), actor.Branch(), cmd.Branch())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ClientName(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.PickupAt(),
		cmd.DeliveryAt(),
		cmd.CargoType(),
		cmd.CargoWeight(),
		cmd.VehicleType(),
		cmd.Distance(),
	)
	if err != nil {
		return err
	}

	if err = newOrder.ChangeStatus(cmd.Status()); err != nil {
		return err
	}
	if err = newOrder.AssignVehicle(cmd.Vehicle()); err != nil {
		return err
	}
	if err = newOrder.AssignDriver(cmd.Driver()); err != nil {
		return err
	}
	if err = newOrder.AssignBranch(branchID); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveOwningBranch picks the branch a new order belongs to. Branch users
// own exactly one branch and cannot create outside it, so their own branch
// wins even when the request names another one.
func resolveOwningBranch(isAdmin bool, actorBranch, requested *kernel.ID) (kernel.ID, error) {
	if !isAdmin {
		if actorBranch == nil {
			return kernel.ID{}, errs.NewValueIsRequiredError("branchId")
		}
		return *actorBranch, nil
	}

	if requested == nil {
		return kernel.ID{}, errs.NewValueIsRequiredError("branchId")
	}
	return *requested, nil
}
