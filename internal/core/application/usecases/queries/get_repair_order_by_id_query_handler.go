package queries

import (
	"context"
	"database/sql"
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRepairOrderByIDQueryHandler assembles the full repair order detail
// from the head row and its two child tables.
type GetRepairOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetRepairOrderByIDQueryHandler creates a handler for detail queries.
func NewGetRepairOrderByIDQueryHandler(db *gorm.DB) GetRepairOrderByIDQueryHandler {
	return GetRepairOrderByIDQueryHandler{db: db}
}

// Handle executes the detail query. A missing order surfaces as
// errs.ObjectNotFoundError.
func (h GetRepairOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetRepairOrderByIDQuery,
) (GetRepairOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRepairOrderByIDQueryResponse{}, err
	}

	response, err := h.loadHead(ctx, query.OrderID())
	if err != nil {
		return GetRepairOrderByIDQueryResponse{}, err
	}

	if response.InspectionItems, err = h.loadInspectionItems(ctx, query.OrderID()); err != nil {
		return GetRepairOrderByIDQueryResponse{}, err
	}
	if response.RepairItems, err = h.loadRepairItems(ctx, query.OrderID()); err != nil {
		return GetRepairOrderByIDQueryResponse{}, err
	}

	return response, nil
}

func (h GetRepairOrderByIDQueryHandler) loadHead(
	ctx context.Context,
	orderID kernel.UUID,
) (GetRepairOrderByIDQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			ro.id,
			ro.order_no,
			ro.status,
			ro.mileage,
			ro.fault_desc,
			ro.remark,
			ro.customer_items,
			ro.parts_amount,
			ro.labor_amount,
			ro.total_amount,
			ro.mechanic_id,
			ro.inspector_id,
			ro.estimated_completion_time,
			ro.actual_completion_time,
			ro.delivery_time,
			ro.customer_signature,
			ro.version,
			ro.created_at,
			c.id,
			c.name,
			c.phone,
			v.id,
			v.brand,
			v.model,
			v.license_plate,
			v.vin
		FROM repair_orders ro
		JOIN customers c ON c.id = ro.customer_id
		JOIN vehicles v ON v.id = ro.vehicle_id
		WHERE ro.id = ?
	`, orderID.Bytes()).Row()

	var (
		response      GetRepairOrderByIDQueryResponse
		id            uuid.UUID
		customerID    uuid.UUID
		vehicleID     uuid.UUID
		mechanicID    *uuid.UUID
		inspectorID   *uuid.UUID
		customerItems []byte
	)
	err := row.Scan(
		&id,
		&response.OrderNo,
		&response.Status,
		&response.Mileage,
		&response.FaultDesc,
		&response.Remark,
		&customerItems,
		&response.PartsAmount,
		&response.LaborAmount,
		&response.TotalAmount,
		&mechanicID,
		&inspectorID,
		&response.EstimatedCompletionTime,
		&response.ActualCompletionTime,
		&response.DeliveryTime,
		&response.CustomerSignature,
		&response.Version,
		&response.CreatedAt,
		&customerID,
		&response.CustomerName,
		&response.CustomerPhone,
		&vehicleID,
		&response.VehicleBrand,
		&response.VehicleModel,
		&response.LicensePlate,
		&response.VIN,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetRepairOrderByIDQueryResponse{},
			errs.NewObjectNotFoundError("repairOrder", orderID.String())
	}
	if err != nil {
		return GetRepairOrderByIDQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetRepairOrderByIDQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetRepairOrderByIDQueryResponse{}, err
	}
	if response.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return GetRepairOrderByIDQueryResponse{}, err
	}
	if response.MechanicID, err = optionalUUID(mechanicID); err != nil {
		return GetRepairOrderByIDQueryResponse{}, err
	}
	if response.InspectorID, err = optionalUUID(inspectorID); err != nil {
		return GetRepairOrderByIDQueryResponse{}, err
	}
	if len(customerItems) > 0 {
		response.CustomerItems = customerItems
	}

	return response, nil
}

func (h GetRepairOrderByIDQueryHandler) loadInspectionItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]InspectionItemDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, result, remark
		FROM inspection_items
		WHERE repair_order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]InspectionItemDetail, 0)
	for rows.Next() {
		var item InspectionItemDetail
		if err = rows.Scan(&item.Name, &item.Result, &item.Remark); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (h GetRepairOrderByIDQueryHandler) loadRepairItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]RepairItemDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM repair_items
		WHERE repair_order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type itemRow struct {
		dbID   int64
		detail RepairItemDetail
	}
	itemRows := make([]itemRow, 0)
	for rows.Next() {
		var r itemRow
		if err = rows.Scan(&r.dbID, &r.detail.Name, &r.detail.Price); err != nil {
			return nil, err
		}
		itemRows = append(itemRows, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	items := make([]RepairItemDetail, 0, len(itemRows))
	for _, r := range itemRows {
		if r.detail.Parts, err = h.loadParts(ctx, r.dbID); err != nil {
			return nil, err
		}
		items = append(items, r.detail)
	}
	return items, nil
}

func (h GetRepairOrderByIDQueryHandler) loadParts(
	ctx context.Context,
	repairItemID int64,
) ([]PartDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT part_id, name, quantity, unit_price
		FROM repair_item_parts
		WHERE repair_item_id = ?
		ORDER BY id
	`, repairItemID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := make([]PartDetail, 0)
	for rows.Next() {
		var (
			part   PartDetail
			partID *uuid.UUID
		)
		if err = rows.Scan(&partID, &part.Name, &part.Quantity, &part.UnitPrice); err != nil {
			return nil, err
		}
		if part.PartID, err = optionalUUID(partID); err != nil {
			return nil, err
		}
		part.Subtotal = part.UnitPrice.Mul(decimal.NewFromInt(int64(part.Quantity)))
		parts = append(parts, part)
	}
	return parts, rows.Err()
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
