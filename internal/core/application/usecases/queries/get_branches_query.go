package queries

import (
	"errors"

	"transport/internal/pkg/guard"
)

var ErrGetBranchesQueryIsNotConstructed = errors.New(
	"GetBranchesQuery must be created via NewGetBranchesQuery constructor",
)

// GetBranchesQuery retrieves all branches in creation order. Used both for
// listings and for populating branch selection in order forms.
type GetBranchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBranchesQuery creates a parameterless branch listing query.
func NewGetBranchesQuery() GetBranchesQuery {
	return GetBranchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBranchesQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchesQueryIsNotConstructed)
}

// GetBranchesQueryResponse is one branch row.
type GetBranchesQueryResponse struct {
	ID      string
	Name    string
	Address string
}
