// Package vehicle provides the fleet vehicle aggregate. Vehicles are
// registered and listed; orders reference them weakly and never drive
// automatic status transitions.
package vehicle

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle was not created via
// NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")

// Vehicle represents a fleet vehicle with its registration plate, free-text
// type and load capacity in kilograms.
type Vehicle struct {
	id           kernel.ID
	registration string
	vehicleType  string
	capacityKg   float64
	status       Status

	isConstructed bool
}

// NewVehicle creates a vehicle in Available status. Registration and type
// must be non-empty and capacity must be positive.
func NewVehicle(id kernel.ID, registration, vehicleType string, capacityKg float64) (*Vehicle, error) {
	v := &Vehicle{
		status:        StatusAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setRegistration(registration),
		v.setVehicleType(vehicleType),
		v.setCapacity(capacityKg),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistence.
func RestoreVehicle(id kernel.ID, registration, vehicleType string, capacityKg float64, status Status) (*Vehicle, error) {
	v, err := NewVehicle(id, registration, vehicleType, capacityKg)
	if err != nil {
		return nil, err
	}
	if err = v.ChangeStatus(status); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate ensures the Vehicle was created through a factory method.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.ID { return v.id }

// Registration returns the unique registration plate.
func (v *Vehicle) Registration() string { return v.registration }

// VehicleType returns the free-text vehicle type.
func (v *Vehicle) VehicleType() string { return v.vehicleType }

// CapacityKg returns the load capacity in kilograms.
func (v *Vehicle) CapacityKg() float64 { return v.capacityKg }

// Status returns the current vehicle status.
func (v *Vehicle) Status() Status { return v.status }

// ChangeStatus sets the vehicle status. Transitions are manual only.
func (v *Vehicle) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

func (v *Vehicle) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if id.Kind() != kernel.KindVehicle {
		return errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%s is not a vehicle identifier", id))
	}
	v.id = id
	return nil
}

func (v *Vehicle) setRegistration(registration string) error {
	if registration == "" {
		return errs.NewValueIsRequiredError("registration")
	}
	v.registration = registration
	return nil
}

func (v *Vehicle) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("type")
	}
	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setCapacity(capacityKg float64) error {
	if capacityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity", fmt.Errorf("%f is not greater than 0", capacityKg))
	}
	v.capacityKg = capacityKg
	return nil
}
