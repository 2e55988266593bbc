// Package user provides the principal aggregate used for authentication and
// order scoping. Users never store plaintext passwords: the aggregate carries
// an opaque credential hash produced and checked through the credential ports.
package user

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created via
// NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User represents an authenticated principal.
//
// Invariants:
//   - Username is unique and non-empty (uniqueness enforced by storage)
//   - The credential hash is opaque and non-empty
//   - Branch users carry exactly one branch reference; admins carry none
//
// A branch user owns exactly the orders whose branch matches its own, by
// query, not by stored back-reference.
type User struct {
	id             kernel.ID
	username       string
	credentialHash string
	role           Role
	branchID       *kernel.ID

	isConstructed bool
}

// NewUser creates a user. Branch users must reference a branch; admins must
// not, since they see every branch.
func NewUser(id kernel.ID, username, credentialHash string, role Role, branchID *kernel.ID) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setCredentialHash(credentialHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := u.setBranch(branchID); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.ID, username, credentialHash string, role Role, branchID *kernel.ID) (*User, error) {
	return NewUser(id, username, credentialHash, role, branchID)
}

// Validate ensures the User was created through a factory method.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user identifier.
func (u *User) ID() kernel.ID { return u.id }

// Username returns the unique login name.
func (u *User) Username() string { return u.username }

// CredentialHash returns the opaque credential hash for verification.
func (u *User) CredentialHash() string { return u.credentialHash }

// Role returns the user's role.
func (u *User) Role() Role { return u.role }

// Branch returns the branch reference for branch users, nil for admins.
func (u *User) Branch() *kernel.ID { return u.branchID }

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

func (u *User) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if id.Kind() != kernel.KindUser {
		return errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%s is not a user identifier", id))
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setCredentialHash(credentialHash string) error {
	if credentialHash == "" {
		return errs.NewValueIsRequiredError("credentialHash")
	}
	u.credentialHash = credentialHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setBranch(branchID *kernel.ID) error {
	switch u.role {
	case RoleAdmin:
		if branchID != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"branchId", errors.New("admin users must not reference a branch"))
		}
	case RoleUser:
		if branchID == nil {
			return errs.NewValueIsRequiredError("branchId")
		}
		if err := branchID.Validate(); err != nil {
			return err
		}
		if branchID.Kind() != kernel.KindBranch {
			return errs.NewValueIsInvalidErrorWithCause(
				"branchId", fmt.Errorf("%s is not a branch identifier", branchID))
		}
	}
	u.branchID = branchID
	return nil
}
