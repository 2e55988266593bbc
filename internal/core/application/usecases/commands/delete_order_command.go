package commands

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order. Deletion is
// destructive, so callers must set the confirmed flag explicitly; an
// unconfirmed command is a no-op rather than an error.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	confirmed bool

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order by identifier.
func NewDeleteOrderCommand(orderID kernel.ID, confirmed bool) (DeleteOrderCommand, error) {
	deleteCommand := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setOrderID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}
	deleteCommand.confirmed = confirmed

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.ID { return c.orderID }

// Confirmed reports whether the caller acknowledged the deletion.
func (c DeleteOrderCommand) Confirmed() bool { return c.confirmed }

func (c *DeleteOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if orderID.Kind() != kernel.KindOrder {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%s is not an order identifier", orderID))
	}
	c.orderID = orderID
	return nil
}
