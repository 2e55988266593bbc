// Package vehiclerepo persists fleet vehicles.
package vehiclerepo

import (
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"
)

// VehicleDTO represents the database structure for persisting vehicles.
type VehicleDTO struct {
	Seq          int64  `gorm:"primaryKey;autoIncrement"`
	ID           string `gorm:"uniqueIndex;size:64;not null"`
	Registration string `gorm:"uniqueIndex;size:32;not null"`
	VehicleType  string
	CapacityKg   float64
	Status       string `gorm:"size:32"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:           aggregate.ID().String(),
		Registration: aggregate.Registration(),
		VehicleType:  aggregate.VehicleType(),
		CapacityKg:   aggregate.CapacityKg(),
		Status:       aggregate.Status().String(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.IDFromStringOfKind(dto.ID, kernel.KindVehicle)
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Registration, dto.VehicleType, dto.CapacityKg, status)
}
