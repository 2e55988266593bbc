package order

import (
	"errors"
	"fmt"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a transport order. It carries the client
// and route details, the cargo description, the pricing inputs (vehicle type
// and distance) and optional references to the assigned vehicle, driver and
// branch.
//
// Invariants:
//   - Must have a valid order identifier
//   - Client name, both addresses, cargo type and vehicle type are non-empty
//   - Pickup and delivery timestamps are set
//   - Cargo weight is non-negative; distance, when known, is non-negative
//   - A missing branch reference is valid only transiently during admin
//     creation; lifecycle handlers assign a branch before persisting
//
// Vehicle, driver and branch references are weak: they are identifier
// lookups resolved at read time, never validated for dangling targets here.
type Order struct {
	id              kernel.ID
	clientName      string
	pickupAddress   string
	deliveryAddress string
	pickupAt        time.Time
	deliveryAt      time.Time
	cargoType       string
	cargoWeight     float64
	vehicleType     string
	status          Status
	vehicleID       *kernel.ID
	driverID        *kernel.ID
	branchID        *kernel.ID
	distanceKm      *float64

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no assignments.
// All route and cargo fields are validated; the returned order carries no
// branch until AssignBranch is called.
func NewOrder(
	id kernel.ID,
	clientName string,
	pickupAddress string,
	deliveryAddress string,
	pickupAt time.Time,
	deliveryAt time.Time,
	cargoType string,
	cargoWeight float64,
	vehicleType string,
	distanceKm *float64,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setPickupAddress(pickupAddress),
		o.setDeliveryAddress(deliveryAddress),
		o.setPickupAt(pickupAt),
		o.setDeliveryAt(deliveryAt),
		o.setCargoType(cargoType),
		o.setCargoWeight(cargoWeight),
		o.setVehicleType(vehicleType),
		o.setDistance(distanceKm),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status
// and assignments. Used by repositories only.
func RestoreOrder(
	id kernel.ID,
	clientName string,
	pickupAddress string,
	deliveryAddress string,
	pickupAt time.Time,
	deliveryAt time.Time,
	cargoType string,
	cargoWeight float64,
	vehicleType string,
	status Status,
	vehicleID *kernel.ID,
	driverID *kernel.ID,
	branchID *kernel.ID,
	distanceKm *float64,
) (*Order, error) {
	o, err := NewOrder(id, clientName, pickupAddress, deliveryAddress,
		pickupAt, deliveryAt, cargoType, cargoWeight, vehicleType, distanceKm)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		o.ChangeStatus(status),
		o.AssignVehicle(vehicleID),
		o.AssignDriver(driverID),
	); err != nil {
		return nil, err
	}

	if branchID != nil {
		if err = o.AssignBranch(*branchID); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.ID { return o.id }

// ClientName returns the name of the ordering client.
func (o *Order) ClientName() string { return o.clientName }

// PickupAddress returns the cargo pickup address.
func (o *Order) PickupAddress() string { return o.pickupAddress }

// DeliveryAddress returns the cargo delivery address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// PickupAt returns the planned pickup time.
func (o *Order) PickupAt() time.Time { return o.pickupAt }

// DeliveryAt returns the planned delivery time. Dashboard metrics and
// report date filtering key off this timestamp.
func (o *Order) DeliveryAt() time.Time { return o.deliveryAt }

// CargoType returns the free-text cargo description.
func (o *Order) CargoType() string { return o.cargoType }

// CargoWeight returns the cargo weight in kilograms.
func (o *Order) CargoWeight() float64 { return o.cargoWeight }

// VehicleType returns the vehicle type tag used by the pricing rule.
func (o *Order) VehicleType() string { return o.vehicleType }

// Status returns the current order status.
func (o *Order) Status() Status { return o.status }

// Vehicle returns the assigned vehicle reference, or nil.
func (o *Order) Vehicle() *kernel.ID { return o.vehicleID }

// Driver returns the assigned driver reference, or nil.
func (o *Order) Driver() *kernel.ID { return o.driverID }

// Branch returns the owning branch reference, or nil while the order is
// still being created by an admin.
func (o *Order) Branch() *kernel.ID { return o.branchID }

// Distance returns the route distance in kilometers, or nil when unknown.
// Orders without a distance price at zero.
func (o *Order) Distance() *float64 { return o.distanceKm }

// UpdateDetails replaces all mutable route and cargo fields in one step.
// Assignments and status are updated separately. On any validation failure
// the order is left unchanged.
func (o *Order) UpdateDetails(
	clientName string,
	pickupAddress string,
	deliveryAddress string,
	pickupAt time.Time,
	deliveryAt time.Time,
	cargoType string,
	cargoWeight float64,
	vehicleType string,
	distanceKm *float64,
) error {
	updated := *o
	if err := errors.Join(
		updated.setClientName(clientName),
		updated.setPickupAddress(pickupAddress),
		updated.setDeliveryAddress(deliveryAddress),
		updated.setPickupAt(pickupAt),
		updated.setDeliveryAt(deliveryAt),
		updated.setCargoType(cargoType),
		updated.setCargoWeight(cargoWeight),
		updated.setVehicleType(vehicleType),
		updated.setDistance(distanceKm),
	); err != nil {
		return err
	}

	*o = updated
	return nil
}

// ChangeStatus sets the order status. All valid statuses are reachable from
// each other; only unknown values are rejected.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// AssignVehicle sets or clears the vehicle reference.
func (o *Order) AssignVehicle(vehicleID *kernel.ID) error {
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
		if vehicleID.Kind() != kernel.KindVehicle {
			return errs.NewValueIsInvalidErrorWithCause(
				"vehicleId", fmt.Errorf("%s is not a vehicle identifier", vehicleID))
		}
	}
	o.vehicleID = vehicleID
	return nil
}

// AssignDriver sets or clears the driver reference.
func (o *Order) AssignDriver(driverID *kernel.ID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
		if driverID.Kind() != kernel.KindDriver {
			return errs.NewValueIsInvalidErrorWithCause(
				"driverId", fmt.Errorf("%s is not a driver identifier", driverID))
		}
	}
	o.driverID = driverID
	return nil
}

// AssignBranch sets the owning branch. A branch reference cannot be cleared:
// once an order is scoped to a branch it stays scoped to some branch.
func (o *Order) AssignBranch(branchID kernel.ID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	if branchID.Kind() != kernel.KindBranch {
		return errs.NewValueIsInvalidErrorWithCause(
			"branchId", fmt.Errorf("%s is not a branch identifier", branchID))
	}
	o.branchID = &branchID
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if id.Kind() != kernel.KindOrder {
		return errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%s is not an order identifier", id))
	}
	o.id = id
	return nil
}

func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	o.clientName = clientName
	return nil
}

func (o *Order) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = address
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPickupAt(pickupAt time.Time) error {
	if pickupAt.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	o.pickupAt = pickupAt
	return nil
}

func (o *Order) setDeliveryAt(deliveryAt time.Time) error {
	if deliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	o.deliveryAt = deliveryAt
	return nil
}

func (o *Order) setCargoType(cargoType string) error {
	if cargoType == "" {
		return errs.NewValueIsRequiredError("cargoType")
	}
	o.cargoType = cargoType
	return nil
}

func (o *Order) setCargoWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cargoWeight", fmt.Errorf("%f is negative", weight))
	}
	o.cargoWeight = weight
	return nil
}

func (o *Order) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	o.vehicleType = vehicleType
	return nil
}

func (o *Order) setDistance(distanceKm *float64) error {
	if distanceKm != nil && *distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distance", fmt.Errorf("%f is negative", *distanceKm))
	}
	o.distanceKm = distanceKm
	return nil
}
