package commands

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a request to add a driver.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.ID
	fullName    string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
func NewRegisterDriverCommand(driverID kernel.ID, fullName, phoneNumber string) (RegisterDriverCommand, error) {
	registerCommand := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setDriverID(driverID),
		registerCommand.setFullName(fullName),
		registerCommand.setPhoneNumber(phoneNumber),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the identifier assigned to the new driver.
func (c RegisterDriverCommand) DriverID() kernel.ID { return c.driverID }

// FullName returns the driver's display name.
func (c RegisterDriverCommand) FullName() string { return c.fullName }

// PhoneNumber returns the driver's contact number.
func (c RegisterDriverCommand) PhoneNumber() string { return c.phoneNumber }

func (c *RegisterDriverCommand) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if driverID.Kind() != kernel.KindDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"driverId", fmt.Errorf("%s is not a driver identifier", driverID))
	}
	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *RegisterDriverCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}
	c.phoneNumber = phoneNumber
	return nil
}
