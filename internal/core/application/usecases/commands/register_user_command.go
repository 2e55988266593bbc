package commands

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/user"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to register a principal. The
// plaintext password lives only inside the command; the handler hashes it
// before anything touches persistence.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.ID
	username string
	password string
	role     user.Role
	branchID *kernel.ID

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user. Branch users
// must name their branch; admins must not.
func NewRegisterUserCommand(
	userID kernel.ID,
	username string,
	password string,
	role user.Role,
	branchID *kernel.ID,
) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setUserID(userID),
		registerCommand.setUsername(username),
		registerCommand.setPassword(password),
		registerCommand.setRole(role),
		registerCommand.setBranchID(branchID),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new user.
func (c RegisterUserCommand) UserID() kernel.ID { return c.userID }

// Username returns the unique login name.
func (c RegisterUserCommand) Username() string { return c.username }

// Password returns the plaintext secret to hash.
func (c RegisterUserCommand) Password() string { return c.password }

// Role returns the requested role.
func (c RegisterUserCommand) Role() user.Role { return c.role }

// Branch returns the branch reference for branch users, nil for admins.
func (c RegisterUserCommand) Branch() *kernel.ID { return c.branchID }

func (c *RegisterUserCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if userID.Kind() != kernel.KindUser {
		return errs.NewValueIsInvalidErrorWithCause(
			"userId", fmt.Errorf("%s is not a user identifier", userID))
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterUserCommand) setBranchID(branchID *kernel.ID) error {
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
