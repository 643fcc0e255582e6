// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. License plate and VIN uniqueness is enforced here
// by database indexes; the domain layer treats its own pre-checks as a fast
// path only.
package vehiclerepo

import (
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates.
type VehicleDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Brand        string    `gorm:"size:64;not null"`
	Model        string    `gorm:"size:64;not null"`
	Year         int       `gorm:"not null"`
	LicensePlate string    `gorm:"size:32;not null;uniqueIndex"`
	VIN          string    `gorm:"size:64;not null;uniqueIndex;column:vin"`
	Mileage      int       `gorm:"not null"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Brand:        aggregate.Brand(),
		Model:        aggregate.Model(),
		Year:         aggregate.Year(),
		LicensePlate: aggregate.LicensePlate(),
		VIN:          aggregate.VIN(),
		Mileage:      aggregate.Mileage(),
	}
}

// toDomain converts a database DTO to a vehicle aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id, customerID, dto.Brand, dto.Model, dto.Year,
		dto.LicensePlate, dto.VIN, dto.Mileage,
	)
}
