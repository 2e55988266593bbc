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

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new transport order.
// Carries the full route and cargo description, the initial status, plus
// optional vehicle, driver and branch references. The acting user decides
// branch ownership: branch users always create into their own branch, admins
// must name one.
//
// Example:
//
//	orderID := kernel.NewID(kernel.KindOrder)
//	cmd, err := NewCreateOrderCommand(orderID, actorID, "Acme Sp. z o.o.",
//	    "Warszawa, Prosta 1", "Kraków, Długa 5", pickupAt, deliveryAt,
//	    "Palety", 1200, "Van", order.StatusPending, &distance, nil, nil, &branchID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.ID
	actorID         kernel.ID
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
	branchID        *kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new transport order.
// Validates identifiers by kind, required text fields, timestamps, the initial
// status and the distance, which must be present and non-negative. Branch
// ownership is resolved by the handler, so a nil branch here is valid for
// branch users.
func NewCreateOrderCommand(
	orderID kernel.ID,
	actorID kernel.ID,
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
	branchID *kernel.ID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setActorID(actorID),
		orderCommand.setClientName(clientName),
		orderCommand.setPickupAddress(pickupAddress),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setPickupAt(pickupAt),
		orderCommand.setDeliveryAt(deliveryAt),
		orderCommand.setCargoType(cargoType),
		orderCommand.setCargoWeight(cargoWeight),
		orderCommand.setVehicleType(vehicleType),
		orderCommand.setStatus(status),
		orderCommand.setDistance(distanceKm),
		orderCommand.setVehicleID(vehicleID),
		orderCommand.setDriverID(driverID),
		orderCommand.setBranchID(branchID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.ID { return c.orderID }

// ActorID returns the identifier of the user performing the creation.
func (c CreateOrderCommand) ActorID() kernel.ID { return c.actorID }

// ClientName returns the ordering client's name.
func (c CreateOrderCommand) ClientName() string { return c.clientName }

// PickupAddress returns the cargo pickup address.
func (c CreateOrderCommand) PickupAddress() string { return c.pickupAddress }

// DeliveryAddress returns the cargo delivery address.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// PickupAt returns the planned pickup time.
func (c CreateOrderCommand) PickupAt() time.Time { return c.pickupAt }

// DeliveryAt returns the planned delivery time.
func (c CreateOrderCommand) DeliveryAt() time.Time { return c.deliveryAt }

// CargoType returns the cargo description.
func (c CreateOrderCommand) CargoType() string { return c.cargoType }

// CargoWeight returns the cargo weight in kilograms.
func (c CreateOrderCommand) CargoWeight() float64 { return c.cargoWeight }

// VehicleType returns the vehicle type tag used for pricing.
func (c CreateOrderCommand) VehicleType() string { return c.vehicleType }

// Status returns the initial status the order starts in.
func (c CreateOrderCommand) Status() order.Status { return c.status }

// Distance returns the route distance in kilometers.
func (c CreateOrderCommand) Distance() *float64 { return c.distanceKm }

// Vehicle returns the optional vehicle reference.
func (c CreateOrderCommand) Vehicle() *kernel.ID { return c.vehicleID }

// Driver returns the optional driver reference.
func (c CreateOrderCommand) Driver() *kernel.ID { return c.driverID }

// Branch returns the requested branch reference. Ignored for branch users,
// required for admins.
func (c CreateOrderCommand) Branch() *kernel.ID { return c.branchID }

func (c *CreateOrderCommand) setOrderID(orderID kernel.ID) error {
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

func (c *CreateOrderCommand) setActorID(actorID kernel.ID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if actorID.Kind() != kernel.KindUser {
		return errs.NewValueIsInvalidErrorWithCause(
			"actorId", fmt.Errorf("%s is not a user identifier", actorID))
	}
	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	c.pickupAddress = address
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setPickupAt(pickupAt time.Time) error {
	if pickupAt.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	c.pickupAt = pickupAt
	return nil
}

func (c *CreateOrderCommand) setDeliveryAt(deliveryAt time.Time) error {
	if deliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	c.deliveryAt = deliveryAt
	return nil
}

func (c *CreateOrderCommand) setCargoType(cargoType string) error {
	if cargoType == "" {
		return errs.NewValueIsRequiredError("cargoType")
	}
	c.cargoType = cargoType
	return nil
}

func (c *CreateOrderCommand) setCargoWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cargoWeight", fmt.Errorf("%f is negative", weight))
	}
	c.cargoWeight = weight
	return nil
}

func (c *CreateOrderCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CreateOrderCommand) setDistance(distanceKm *float64) error {
	if distanceKm == nil {
		return errs.NewValueIsRequiredError("distance")
	}
	if *distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distance", fmt.Errorf("%f is negative", *distanceKm))
	}
	c.distanceKm = distanceKm
	return nil
}

func (c *CreateOrderCommand) setVehicleID(vehicleID *kernel.ID) error {
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

func (c *CreateOrderCommand) setDriverID(driverID *kernel.ID) error {
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

func (c *CreateOrderCommand) setBranchID(branchID *kernel.ID) error {
	if branchID != nil {
		if err := branchID.Validate(); err != nil {
			return err
		}
		if branchID.Kind() != kernel.KindBranch {
			return errs.NewValueIsInvalidErrorWithCause(
				"branchId", fmt.Errorf("%s is not a branch identifier", branchID))
		}
	}
	c.branchID = branchID
	return nil
}
