package queries

import (
	"context"

	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRepairOrdersQueryHandler serves the repair order board with direct SQL,
// joining customer and vehicle context in one round trip per page.
type GetRepairOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRepairOrdersQueryHandler creates a handler for board queries.
func NewGetRepairOrdersQueryHandler(db *gorm.DB) GetRepairOrdersQueryHandler {
	return GetRepairOrdersQueryHandler{db: db}
}

// Handle executes the board query: a count for pagination, then the page
// itself, newest first.
func (h GetRepairOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRepairOrdersQuery,
) (GetRepairOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRepairOrdersQueryResponse{}, err
	}

	statusFilter := ""
	if query.Status() != nil {
		statusFilter = query.Status().String()
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM repair_orders
		WHERE (? = '' OR status = ?)
	`, statusFilter, statusFilter).Scan(&total).Error
	if err != nil {
		return GetRepairOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ro.id,
			ro.order_no,
			ro.status,
			ro.fault_desc,
			ro.total_amount,
			ro.created_at,
			c.name,
			c.phone,
			v.brand,
			v.model,
			v.license_plate
		FROM repair_orders ro
		JOIN customers c ON c.id = ro.customer_id
		JOIN vehicles v ON v.id = ro.vehicle_id
		WHERE (? = '' OR ro.status = ?)
		ORDER BY ro.created_at DESC
		LIMIT ? OFFSET ?
	`, statusFilter, statusFilter, query.Size(), query.Offset()).Rows()
	if err != nil {
		return GetRepairOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]RepairOrderSummary, 0, query.Size())
	for rows.Next() {
		var (
			summary RepairOrderSummary
			id      uuid.UUID
		)
		err = rows.Scan(
			&id,
			&summary.OrderNo,
			&summary.Status,
			&summary.FaultDesc,
			&summary.TotalAmount,
			&summary.CreatedAt,
			&summary.CustomerName,
			&summary.CustomerPhone,
			&summary.VehicleBrand,
			&summary.VehicleModel,
			&summary.LicensePlate,
		)
		if err != nil {
			return GetRepairOrdersQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetRepairOrdersQueryResponse{}, err
		}
		orders = append(orders, summary)
	}
	if err = rows.Err(); err != nil {
		return GetRepairOrdersQueryResponse{}, err
	}

	return GetRepairOrdersQueryResponse{Total: total, Orders: orders}, nil
}
