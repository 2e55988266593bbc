package ports

import (
	"context"

	"transport/internal/core/domain/model/branch"
	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for fleet vehicles.
// Vehicles are registered and listed; orders never transition their status.
type VehicleRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error
	Get(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error)
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)
}

// DriverRepository defines the persistence contract for drivers.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error
	Update(ctx context.Context, aggregate *driver.Driver) error
	Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}

// BranchRepository defines the persistence contract for branches.
// Branches are never deleted: orders and users reference them weakly.
type BranchRepository interface {
	Add(ctx context.Context, aggregate *branch.Branch) error
	Get(ctx context.Context, id kernel.ID) (*branch.Branch, error)
	GetAll(ctx context.Context) ([]*branch.Branch, error)
}
