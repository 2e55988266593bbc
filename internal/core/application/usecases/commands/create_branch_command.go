package commands

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrCreateBranchCommandIsNotConstructed = errors.New(
	"CreateBranchCommand must be created via NewCreateBranchCommand constructor",
)

// CreateBranchCommand represents a request to open a new branch.
type CreateBranchCommand struct { //nolint:recvcheck //using for validation
	branchID kernel.ID
	name     string
	address  string

	guard guard.ConstructorGuard
}

// NewCreateBranchCommand creates a command to register a branch.
func NewCreateBranchCommand(branchID kernel.ID, name, address string) (CreateBranchCommand, error) {
	branchCommand := CreateBranchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		branchCommand.setBranchID(branchID),
		branchCommand.setName(name),
		branchCommand.setAddress(address),
	); err != nil {
		return CreateBranchCommand{}, err
	}

	return branchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBranchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBranchCommandIsNotConstructed)
}

// BranchID returns the identifier assigned to the new branch.
func (c CreateBranchCommand) BranchID() kernel.ID { return c.branchID }

// Name returns the branch display name.
func (c CreateBranchCommand) Name() string { return c.name }

// Address returns the branch address.
func (c CreateBranchCommand) Address() string { return c.address }

func (c *CreateBranchCommand) setBranchID(branchID kernel.ID) error {
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

func (c *CreateBranchCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateBranchCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
