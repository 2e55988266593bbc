package commands

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

// RegisterVehicleCommand represents a request to add a vehicle to the fleet.
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID    kernel.ID
	registration string
	vehicleType  string
	capacityKg   float64

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a fleet vehicle.
// Capacity must be strictly positive; a vehicle that can carry nothing is a
// data entry error, not a valid fleet record.
func NewRegisterVehicleCommand(
	vehicleID kernel.ID,
	registration string,
	vehicleType string,
	capacityKg float64,
) (RegisterVehicleCommand, error) {
	registerCommand := RegisterVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setVehicleID(vehicleID),
		registerCommand.setRegistration(registration),
		registerCommand.setVehicleType(vehicleType),
		registerCommand.setCapacity(capacityKg),
	); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier assigned to the new vehicle.
func (c RegisterVehicleCommand) VehicleID() kernel.ID { return c.vehicleID }

// Registration returns the licence plate.
func (c RegisterVehicleCommand) Registration() string { return c.registration }

// VehicleType returns the vehicle type tag.
func (c RegisterVehicleCommand) VehicleType() string { return c.vehicleType }

// Capacity returns the load capacity in kilograms.
func (c RegisterVehicleCommand) Capacity() float64 { return c.capacityKg }

func (c *RegisterVehicleCommand) setVehicleID(vehicleID kernel.ID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if vehicleID.Kind() != kernel.KindVehicle {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleId", fmt.Errorf("%s is not a vehicle identifier", vehicleID))
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *RegisterVehicleCommand) setRegistration(registration string) error {
	if registration == "" {
		return errs.NewValueIsRequiredError("registration")
	}
	c.registration = registration
	return nil
}

func (c *RegisterVehicleCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *RegisterVehicleCommand) setCapacity(capacityKg float64) error {
	if capacityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity", fmt.Errorf("%f is not positive", capacityKg))
	}
	c.capacityKg = capacityKg
	return nil
}
