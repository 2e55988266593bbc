// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work owns one database transaction; the repositories it
// hands out are bound to that transaction, and every aggregate they write is
// tracked for post-commit processing.
package postgres

import (
	"context"

	"transport/internal/adapters/out/postgres/branchrepo"
	"transport/internal/adapters/out/postgres/driverrepo"
	"transport/internal/adapters/out/postgres/orderrepo"
	"transport/internal/adapters/out/postgres/userrepo"
	"transport/internal/adapters/out/postgres/vehiclerepo"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM
// connection. Each business operation gets a fresh instance, isolated from
// other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates the transaction. Calling Begin on an already started unit
// of work is a no-op, never a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) connection() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.connection(), uow)
}

// VehicleRepository returns a vehicle repository bound to the current transaction.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.connection(), uow)
}

// DriverRepository returns a driver repository bound to the current transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.connection(), uow)
}

// BranchRepository returns a branch repository bound to the current transaction.
func (uow *GormUnitOfWork) BranchRepository() ports.BranchRepository {
	return branchrepo.NewGormBranchRepository(uow.connection(), uow)
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.connection(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by the repository implementations on every write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
