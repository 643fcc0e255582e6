// Package ports defines repository interfaces for the workshop domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"
)

// RepairOrderRepository defines the persistence contract for repair order
// aggregates, including their nested inspection sheets and quoted repair items.
type RepairOrderRepository interface {
	// Add persists a new repair order aggregate to storage.
	// Returns errs.DuplicateValueError when the order number is already taken.
	Add(ctx context.Context, aggregate *repairorder.RepairOrder) error

	// Update persists changes to an existing repair order aggregate.
	// The stored version must match the aggregate's version at load time;
	// on mismatch the update is rejected with errs.VersionConflictError and
	// nothing is written. Child collections (inspection items, repair items)
	// are replaced wholesale.
	Update(ctx context.Context, aggregate *repairorder.RepairOrder) error

	// Get retrieves a repair order aggregate by its unique identifier,
	// complete with inspection items, repair items and their parts.
	Get(ctx context.Context, id kernel.UUID) (*repairorder.RepairOrder, error)

	// GetByOrderNo retrieves a repair order by its human-facing order number.
	GetByOrderNo(ctx context.Context, orderNo repairorder.OrderNo) (*repairorder.RepairOrder, error)
}
