// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The seq column records insertion order; every listing
// sorts on it so scoped views keep the order records were registered in.
package orderrepo

import (
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The domain identifier is a kind-prefixed string, so it is stored as text
// with a unique index; seq is the synthetic insertion counter.
type OrderDTO struct {
	Seq             int64  `gorm:"primaryKey;autoIncrement"`
	ID              string `gorm:"uniqueIndex;size:64;not null"`
	ClientName      string
	PickupAddress   string
	DeliveryAddress string
	PickupAt        time.Time
	DeliveryAt      time.Time `gorm:"index"`
	CargoType       string
	CargoWeight     float64
	VehicleType     string
	Status          string   `gorm:"index;size:32"`
	VehicleID       *string  `gorm:"size:64"`
	DriverID        *string  `gorm:"size:64"`
	BranchID        *string  `gorm:"index;size:64"`
	DistanceKm      *float64
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().String(),
		ClientName:      aggregate.ClientName(),
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PickupAt:        aggregate.PickupAt(),
		DeliveryAt:      aggregate.DeliveryAt(),
		CargoType:       aggregate.CargoType(),
		CargoWeight:     aggregate.CargoWeight(),
		VehicleType:     aggregate.VehicleType(),
		Status:          aggregate.Status().String(),
		VehicleID:       referenceString(aggregate.Vehicle()),
		DriverID:        referenceString(aggregate.Driver()),
		BranchID:        referenceString(aggregate.Branch()),
		DistanceKm:      aggregate.Distance(),
	}
}

// toDomain reconstructs the complete aggregate, including status and
// assignments, using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromStringOfKind(dto.ID, kernel.KindOrder)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	vehicleID, err := referenceID(dto.VehicleID, kernel.KindVehicle)
	if err != nil {
		return nil, err
	}
	driverID, err := referenceID(dto.DriverID, kernel.KindDriver)
	if err != nil {
		return nil, err
	}
	branchID, err := referenceID(dto.BranchID, kernel.KindBranch)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.ClientName,
		dto.PickupAddress,
		dto.DeliveryAddress,
		dto.PickupAt,
		dto.DeliveryAt,
		dto.CargoType,
		dto.CargoWeight,
		dto.VehicleType,
		status,
		vehicleID,
		driverID,
		branchID,
		dto.DistanceKm,
	)
}

func referenceString(id *kernel.ID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func referenceID(raw *string, kind kernel.Kind) (*kernel.ID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.IDFromStringOfKind(*raw, kind)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
