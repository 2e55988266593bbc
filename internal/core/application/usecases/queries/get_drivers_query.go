package queries

import (
	"errors"

	"transport/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves all drivers in registration order.
type GetDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a parameterless driver listing query.
func NewGetDriversQuery() GetDriversQuery {
	return GetDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// GetDriversQueryResponse is one driver row.
type GetDriversQueryResponse struct {
	ID          string
	FullName    string
	PhoneNumber string
	Status      string
}
