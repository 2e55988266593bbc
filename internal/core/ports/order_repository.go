// Package ports defines the contracts between the application core and its
// adapters: repositories over the persisted collections, the unit of work,
// the remote report service and credential hashing/verification.
package ports

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must preserve insertion order in GetAll so scoped views
// keep the relative order records were created in.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and carry a branch reference.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns ObjectNotFoundError if the identifier is absent.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order by identifier.
	// Returns ObjectNotFoundError if the identifier is absent.
	Delete(ctx context.Context, id kernel.ID) error

	// Get retrieves an order by identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll retrieves the full unscoped collection in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
