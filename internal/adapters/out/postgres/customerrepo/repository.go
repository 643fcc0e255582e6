package customerrepo

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/customer"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer to the database. A phone number collision
// surfaces as errs.DuplicateValueError.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateValueErrorWithCause("phone", aggregate.Phone(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateValueErrorWithCause("phone", aggregate.Phone(), result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by ID, including the identifiers of vehicles
// registered under it.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return r.hydrate(ctx, dto)
}

// GetByPhone retrieves a customer by its unique phone number.
func (r *GormCustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", phone)
		}
		return nil, err
	}

	return r.hydrate(ctx, dto)
}

func (r *GormCustomerRepository) hydrate(ctx context.Context, dto CustomerDTO) (*customer.Customer, error) {
	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("vehicles").
		Where("customer_id = ?", dto.ID).
		Order("license_plate").
		Pluck("id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	vehicleIDs := make([]kernel.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		vehicleID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		vehicleIDs = append(vehicleIDs, vehicleID)
	}

	return toDomain(dto, vehicleIDs)
}
