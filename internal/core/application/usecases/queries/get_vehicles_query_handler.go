package queries

import (
	"context"

	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVehiclesQueryHandler serves the vehicle directory with direct SQL.
type GetVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiclesQueryHandler creates a handler for directory queries.
func NewGetVehiclesQueryHandler(db *gorm.DB) GetVehiclesQueryHandler {
	return GetVehiclesQueryHandler{db: db}
}

// Handle executes the directory query with an optional keyword filter.
func (h GetVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetVehiclesQuery,
) (GetVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVehiclesQueryResponse{}, err
	}

	pattern := "%" + query.Keyword() + "%"

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM vehicles
		WHERE (? = '' OR license_plate LIKE ? OR vin LIKE ? OR brand LIKE ? OR model LIKE ?)
	`, query.Keyword(), pattern, pattern, pattern, pattern).Scan(&total).Error
	if err != nil {
		return GetVehiclesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.brand,
			v.model,
			v.year,
			v.license_plate,
			v.vin,
			v.mileage,
			c.id,
			c.name
		FROM vehicles v
		JOIN customers c ON c.id = v.customer_id
		WHERE (? = '' OR v.license_plate LIKE ? OR v.vin LIKE ? OR v.brand LIKE ? OR v.model LIKE ?)
		ORDER BY v.license_plate
		LIMIT ? OFFSET ?
	`, query.Keyword(), pattern, pattern, pattern, pattern, query.Size(), query.Offset()).Rows()
	if err != nil {
		return GetVehiclesQueryResponse{}, err
	}
	defer rows.Close()

	vehicles := make([]VehicleSummary, 0, query.Size())
	for rows.Next() {
		var (
			summary    VehicleSummary
			id         uuid.UUID
			customerID uuid.UUID
		)
		err = rows.Scan(
			&id,
			&summary.Brand,
			&summary.Model,
			&summary.Year,
			&summary.LicensePlate,
			&summary.VIN,
			&summary.Mileage,
			&customerID,
			&summary.CustomerName,
		)
		if err != nil {
			return GetVehiclesQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetVehiclesQueryResponse{}, err
		}
		if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return GetVehiclesQueryResponse{}, err
		}
		vehicles = append(vehicles, summary)
	}
	if err = rows.Err(); err != nil {
		return GetVehiclesQueryResponse{}, err
	}

	return GetVehiclesQueryResponse{Total: total, Vehicles: vehicles}, nil
}
