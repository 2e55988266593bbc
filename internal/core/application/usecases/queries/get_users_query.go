package queries

import (
	"errors"

	"transport/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves all principals in registration order. The read
// model exposes identity and scope only; credential hashes stay in storage.
type GetUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a parameterless user listing query.
func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// GetUsersQueryResponse is one user row. BranchID is empty for admins.
type GetUsersQueryResponse struct {
	ID       string
	Username string
	Role     string
	BranchID string
}
