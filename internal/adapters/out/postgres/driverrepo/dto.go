// Package driverrepo persists drivers.
package driverrepo

import (
	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	Seq         int64  `gorm:"primaryKey;autoIncrement"`
	ID          string `gorm:"uniqueIndex;size:64;not null"`
	FullName    string
	PhoneNumber string
	Status      string `gorm:"size:32"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:          aggregate.ID().String(),
		FullName:    aggregate.FullName(),
		PhoneNumber: aggregate.PhoneNumber(),
		Status:      aggregate.Status().String(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.IDFromStringOfKind(dto.ID, kernel.KindDriver)
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.FullName, dto.PhoneNumber, status)
}
