package queries

import (
	"errors"
	"time"

	"transport/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves active orders whose planned delivery time
// has already passed. Used by the background watch, so it is not scoped to an
// acting user.
type GetOverdueOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates an overdue order listing query.
func NewGetOverdueOrdersQuery() GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// GetOverdueOrdersQueryResponse is one overdue order.
type GetOverdueOrdersQueryResponse struct {
	ID              string
	ClientName      string
	DeliveryAddress string
	DeliveryAt      time.Time
	Status          string
}
