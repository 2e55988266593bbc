package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the persisted
// collections. Each lifecycle mutation reads the latest snapshot, applies
// one change and commits it atomically relative to that operation.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// VehicleRepository returns a VehicleRepository bound to the current transaction.
	VehicleRepository() VehicleRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// BranchRepository returns a BranchRepository bound to the current transaction.
	BranchRepository() BranchRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository
}
