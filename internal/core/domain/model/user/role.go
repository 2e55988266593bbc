package user

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// Role determines the visibility scope of a user: admins see every branch,
// branch users only their own.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleUser
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleAdmin:   "admin",
		RoleUser:    "user",
	}
}

// RoleFromString parses a role from its canonical name.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "user":
		return RoleUser, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks the role is admin or user.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleUser {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical role name.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
