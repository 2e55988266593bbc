// Package driver provides the driver aggregate. Drivers are registered and
// listed; orders reference them weakly and never drive automatic status
// transitions.
package driver

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver was not created via
// NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver represents an employed driver with contact details.
type Driver struct {
	id          kernel.ID
	fullName    string
	phoneNumber string
	status      Status

	isConstructed bool
}

// NewDriver creates a driver in Available status.
func NewDriver(id kernel.ID, fullName, phoneNumber string) (*Driver, error) {
	d := &Driver{
		status:        StatusAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setFullName(fullName),
		d.setPhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id kernel.ID, fullName, phoneNumber string, status Status) (*Driver, error) {
	d, err := NewDriver(id, fullName, phoneNumber)
	if err != nil {
		return nil, err
	}
	if err = d.ChangeStatus(status); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate ensures the Driver was created through a factory method.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver identifier.
func (d *Driver) ID() kernel.ID { return d.id }

// FullName returns the driver's full name.
func (d *Driver) FullName() string { return d.fullName }

// PhoneNumber returns the driver's contact phone number.
func (d *Driver) PhoneNumber() string { return d.phoneNumber }

// Status returns the current driver status.
func (d *Driver) Status() Status { return d.status }

// ChangeStatus sets the driver status. Transitions are manual only.
func (d *Driver) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if id.Kind() != kernel.KindDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%s is not a driver identifier", id))
	}
	d.id = id
	return nil
}

func (d *Driver) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	d.fullName = fullName
	return nil
}

func (d *Driver) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}
	d.phoneNumber = phoneNumber
	return nil
}
