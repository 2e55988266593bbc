package queries

import (
	"errors"

	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)

	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords, so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthenticateUserQuery checks a username and password pair against the
// stored credential hash and, on success, returns the principal's identity
// and scope.
type AuthenticateUserQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query.
func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	if username == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateUserQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Username returns the submitted login name.
func (q AuthenticateUserQuery) Username() string { return q.username }

// Password returns the submitted plaintext secret.
func (q AuthenticateUserQuery) Password() string { return q.password }

// AuthenticateUserQueryResponse identifies the authenticated principal.
// BranchID is empty for admins.
type AuthenticateUserQueryResponse struct {
	UserID   string
	Username string
	Role     string
	BranchID string
}
