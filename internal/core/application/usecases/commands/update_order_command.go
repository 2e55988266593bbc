package commands

import (
	"errors"
	"fmt"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a full replacement of an order's editable
// fields. The submitted branch is taken as-is: branch forcing applies only at
// creation time, and the edit form always carries an explicit branch.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.ID
	clientName      string
	pickupAddress   string
	deliveryAddress string
	pickupAt        time.Time
	deliveryAt      time.Time
	cargoType       string
	cargoWeight     float64
	vehicleType     string
	status          order.Status
	distanceKm      *float64
	vehicleID       *kernel.ID
	driverID        *kernel.ID
	branchID        kernel.ID

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command replacing an order's details,
// status, assignments and owning branch.
func NewUpdateOrderCommand(
	orderID kernel.ID,
	clientName string,
	pickupAddress string,
	deliveryAddress string,
	pickupAt time.Time,
	deliveryAt time.Time,
	cargoType string,
	cargoWeight float64,
	vehicleType string,
	status order.Status,
	distanceKm *float64,
	vehicleID *kernel.ID,
	driverID *kernel.ID,
	branchID kernel.ID,
) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setClientName(clientName),
		updateCommand.setPickupAddress(pickupAddress),
		updateCommand.setDeliveryAddress(deliveryAddress),
		updateCommand.setPickupAt(pickupAt),
		updateCommand.setDeliveryAt(deliveryAt),
		updateCommand.setCargoType(cargoType),
		updateCommand.setCargoWeight(cargoWeight),
		updateCommand.setVehicleType(vehicleType),
		updateCommand.setStatus(status),
		updateCommand.setDistance(distanceKm),
		updateCommand.setVehicleID(vehicleID),
		updateCommand.setDriverID(driverID),
		updateCommand.setBranchID(branchID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.ID { return c.orderID }

// ClientName returns the replacement client name.
func (c UpdateOrderCommand) ClientName() string { return c.clientName }

// PickupAddress returns the replacement pickup address.
func (c UpdateOrderCommand) PickupAddress() string { return c.pickupAddress }

// DeliveryAddress returns the replacement delivery address.
func (c UpdateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// PickupAt returns the replacement pickup time.
func (c UpdateOrderCommand) PickupAt() time.Time { return c.pickupAt }

// DeliveryAt returns the replacement delivery time.
func (c UpdateOrderCommand) DeliveryAt() time.Time { return c.deliveryAt }

// CargoType returns the replacement cargo description.
func (c UpdateOrderCommand) CargoType() string { return c.cargoType }

// CargoWeight returns the replacement cargo weight in kilograms.
func (c UpdateOrderCommand) CargoWeight() float64 { return c.cargoWeight }

// VehicleType returns the replacement vehicle type tag.
func (c UpdateOrderCommand) VehicleType() string { return c.vehicleType }

// Status returns the replacement order status.
func (c UpdateOrderCommand) Status() order.Status { return c.status }

// Distance returns the replacement distance in kilometers, or nil.
func (c UpdateOrderCommand) Distance() *float64 { return c.distanceKm }

// Vehicle returns the replacement vehicle reference, or nil to clear it.
func (c UpdateOrderCommand) Vehicle() *kernel.ID { return c.vehicleID }

// Driver returns the replacement driver reference, or nil to clear it.
func (c UpdateOrderCommand) Driver() *kernel.ID { return c.driverID }

// Branch returns the owning branch for the updated order.
func (c UpdateOrderCommand) Branch() kernel.ID { return c.branchID }

func (c *UpdateOrderCommand) setOrderID(orderID kernel.ID) error {
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

func (c *UpdateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	c.clientName = clientName
	return nil
}

func (c *UpdateOrderCommand) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	c.pickupAddress = address
	return nil
}

func (c *UpdateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}

func (c *UpdateOrderCommand) setPickupAt(pickupAt time.Time) error {
	if pickupAt.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	c.pickupAt = pickupAt
	return nil
}

func (c *UpdateOrderCommand) setDeliveryAt(deliveryAt time.Time) error {
	if deliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	c.deliveryAt = deliveryAt
	return nil
}

func (c *UpdateOrderCommand) setCargoType(cargoType string) error {
	if cargoType == "" {
		return errs.NewValueIsRequiredError("cargoType")
	}
	c.cargoType = cargoType
	return nil
}

func (c *UpdateOrderCommand) setCargoWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cargoWeight", fmt.Errorf("%f is negative", weight))
	}
	c.cargoWeight = weight
	return nil
}

func (c *UpdateOrderCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setDistance(distanceKm *float64) error {
	if distanceKm != nil && *distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distance", fmt.Errorf("%f is negative", *distanceKm))
	}
	c.distanceKm = distanceKm
	return nil
}

func (c *UpdateOrderCommand) setVehicleID(vehicleID *kernel.ID) error {
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
		if vehicleID.Kind() != kernel.KindVehicle {
			return errs.NewValueIsInvalidErrorWithCause(
				"vehicleId", fmt.Errorf("%s is not a vehicle identifier", vehicleID))
		}
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateOrderCommand) setDriverID(driverID *kernel.ID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
		if driverID.Kind() != kernel.KindDriver {
			return errs.NewValueIsInvalidErrorWithCause(
				"driverId", fmt.Errorf("%s is not a driver identifier", driverID))
		}
	}
	c.driverID = driverID
	return nil
}

func (c *UpdateOrderCommand) setBranchID(branchID kernel.ID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	if branchID.Kind() != kernel.KindBranch {
		return errs.NewValueIsInvalidErrorWithCause(
			"branchId", fmt.Errorf("%s is not a branch identifier", branchID))
	}
	c.branchID = branchID
	return nil
}
