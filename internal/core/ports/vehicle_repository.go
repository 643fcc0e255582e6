package ports

import (
	"context"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// License plate and VIN lookups back the intake flow, which must resolve a
// vehicle by plate before deciding whether to register a new one.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// Returns errs.DuplicateValueError when the license plate or VIN is
	// already registered.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByLicensePlate retrieves a vehicle by its license plate.
	GetByLicensePlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)

	// GetByVIN retrieves a vehicle by its VIN.
	GetByVIN(ctx context.Context, vin string) (*vehicle.Vehicle, error)
}
