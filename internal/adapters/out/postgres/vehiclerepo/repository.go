package vehiclerepo

import (
	"context"
	"errors"
	"strings"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/vehicle"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database. A plate or VIN collision
// surfaces as errs.DuplicateValueError naming the offending column.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return duplicateError(err, aggregate)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle to the database.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return duplicateError(result.Error, aggregate)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.getBy(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByLicensePlate retrieves a vehicle by its license plate.
func (r *GormVehicleRepository) GetByLicensePlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	if plate == "" {
		return nil, errs.NewValueIsRequiredError("licensePlate")
	}
	return r.getBy(ctx, "license_plate = ?", plate, plate)
}

// GetByVIN retrieves a vehicle by its VIN.
func (r *GormVehicleRepository) GetByVIN(ctx context.Context, vin string) (*vehicle.Vehicle, error) {
	if vin == "" {
		return nil, errs.NewValueIsRequiredError("vin")
	}
	return r.getBy(ctx, "vin = ?", vin, vin)
}

func (r *GormVehicleRepository) getBy(
	ctx context.Context,
	condition string,
	value any,
	lookup string,
) (*vehicle.Vehicle, error) {
	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, condition, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", lookup)
		}
		return nil, err
	}

	return toDomain(dto)
}

// duplicateError names the colliding column so callers can distinguish a
// taken plate from a taken VIN. The driver's error text carries the index
// name.
func duplicateError(err error, aggregate *vehicle.Vehicle) error {
	if strings.Contains(err.Error(), "vin") {
		return errs.NewDuplicateValueErrorWithCause("vin", aggregate.VIN(), err)
	}
	return errs.NewDuplicateValueErrorWithCause("licensePlate", aggregate.LicensePlate(), err)
}
