package queries

import (
	"errors"

	"transport/internal/pkg/guard"
)

var ErrGetVehiclesQueryIsNotConstructed = errors.New(
	"GetVehiclesQuery must be created via NewGetVehiclesQuery constructor",
)

// GetVehiclesQuery retrieves the whole fleet in registration order.
type GetVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVehiclesQuery creates a parameterless fleet listing query.
func NewGetVehiclesQuery() GetVehiclesQuery {
	return GetVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesQueryIsNotConstructed)
}

// GetVehiclesQueryResponse is one fleet vehicle row.
type GetVehiclesQueryResponse struct {
	ID           string
	Registration string
	VehicleType  string
	CapacityKg   float64
	Status       string
}
