// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"transport/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface covering the repositories it
// actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// BranchRepoFactory provides access to the branch repository within a transaction.
	BranchRepoFactory interface {
		BranchRepository() ports.BranchRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by update and delete, which never consult the acting user.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation.
	// Creation loads the acting user to decide which branch owns the order,
	// so it spans both the order and user repositories.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// CreateOrderUoWFactory creates new creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// VehicleUoW manages transactions for vehicle registration.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// DriverUoW manages transactions for driver registration.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// BranchUoW manages transactions for branch creation.
	BranchUoW interface {
		TxManager
		BranchRepoFactory
	}

	// BranchUoWFactory creates new branch unit of work instances.
	BranchUoWFactory interface {
		Create() BranchUoW
	}

	// UserUoW manages transactions for user registration.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
