package orderrepo

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepairOrderRepository implements RepairOrderRepository using GORM.
type GormRepairOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRepairOrderRepository creates a new GORM repair-order repository.
func NewGormRepairOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormRepairOrderRepository {
	return &GormRepairOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new repair order with its child rows. An order-number collision
// surfaces as errs.DuplicateValueError; the generator does not guarantee
// uniqueness, so callers may regenerate and retry.
func (r *GormRepairOrderRepository) Add(ctx context.Context, aggregate *repairorder.RepairOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateValueErrorWithCause("orderNo", aggregate.OrderNo().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing repair order. The head row is updated only when
// the stored version still matches the version the aggregate was read at;
// a stale write is rejected with errs.VersionConflictError. Child rows are
// replaced wholesale.
func (r *GormRepairOrderRepository) Update(ctx context.Context, aggregate *repairorder.RepairOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	db := r.db.WithContext(ctx)
	result := db.Model(&RepairOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate)
	}

	if err := r.replaceChildren(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a repair order by ID with its inspection sheet and quoted
// items.
func (r *GormRepairOrderRepository) Get(ctx context.Context, id kernel.UUID) (*repairorder.RepairOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.getBy(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByOrderNo retrieves a repair order by its unique order number.
func (r *GormRepairOrderRepository) GetByOrderNo(
	ctx context.Context,
	orderNo repairorder.OrderNo,
) (*repairorder.RepairOrder, error) {
	if err := orderNo.Validate(); err != nil {
		return nil, err
	}
	return r.getBy(ctx, "order_no = ?", orderNo.String(), orderNo.String())
}

func (r *GormRepairOrderRepository) getBy(
	ctx context.Context,
	condition string,
	value any,
	lookup string,
) (*repairorder.RepairOrder, error) {
	var dto RepairOrderDTO
	err := r.db.WithContext(ctx).
		Preload("InspectionItems").
		Preload("RepairItems.Parts").
		First(&dto, condition, value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("repairOrder", lookup)
		}
		return nil, err
	}

	return toDomain(dto)
}

// classifyMissedUpdate distinguishes a vanished row from a concurrent write
// after a guarded update matched nothing.
func (r *GormRepairOrderRepository) classifyMissedUpdate(
	ctx context.Context,
	aggregate *repairorder.RepairOrder,
) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RepairOrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("repairOrder", aggregate.ID().String())
	}
	return errs.NewVersionConflictError("repairOrder", aggregate.ID().String())
}

// replaceChildren deletes and reinserts the inspection sheet and the quoted
// items. Both collections are replaced wholesale by their domain operations,
// so a diff would buy nothing here.
func (r *GormRepairOrderRepository) replaceChildren(ctx context.Context, dto RepairOrderDTO) error {
	db := r.db.WithContext(ctx)

	itemIDs := db.Model(&RepairItemDTO{}).
		Select("id").
		Where("repair_order_id = ?", dto.ID)
	if err := db.Where("repair_item_id IN (?)", itemIDs).Delete(&RepairItemPartDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("repair_order_id = ?", dto.ID).Delete(&RepairItemDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("repair_order_id = ?", dto.ID).Delete(&InspectionItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.InspectionItems) > 0 {
		if err := db.Create(&dto.InspectionItems).Error; err != nil {
			return err
		}
	}
	if len(dto.RepairItems) > 0 {
		if err := db.Create(&dto.RepairItems).Error; err != nil {
			return err
		}
	}

	return nil
}
