// Package branch provides the organizational branch aggregate. Branches are
// the scoping unit for order visibility and are never deleted by this core.
package branch

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// ErrBranchIsNotConstructed is returned when a Branch was not created via
// NewBranch or RestoreBranch.
var ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch or RestoreBranch")

// Branch represents an organizational branch office.
type Branch struct {
	id      kernel.ID
	name    string
	address string

	isConstructed bool
}

// NewBranch creates a branch with a non-empty name and address.
func NewBranch(id kernel.ID, name, address string) (*Branch, error) {
	b := &Branch{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setAddress(address),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBranch reconstructs a branch from persistence.
func RestoreBranch(id kernel.ID, name, address string) (*Branch, error) {
	return NewBranch(id, name, address)
}

// Validate ensures the Branch was created through a factory method.
func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}
	return nil
}

// ID returns the branch identifier.
func (b *Branch) ID() kernel.ID { return b.id }

// Name returns the branch display name.
func (b *Branch) Name() string { return b.name }

// Address returns the branch address.
func (b *Branch) Address() string { return b.address }

func (b *Branch) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if id.Kind() != kernel.KindBranch {
		return errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%s is not a branch identifier", id))
	}
	b.id = id
	return nil
}

func (b *Branch) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}

func (b *Branch) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	b.address = address
	return nil
}
