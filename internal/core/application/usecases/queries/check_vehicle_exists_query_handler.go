package queries

import (
	"context"
	"database/sql"
	"errors"

	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckVehicleExistsQueryHandler resolves vehicles by plate or VIN along
// with their owning customer, using direct SQL for read performance.
type CheckVehicleExistsQueryHandler struct {
	db *gorm.DB
}

// NewCheckVehicleExistsQueryHandler creates a handler for vehicle lookups.
func NewCheckVehicleExistsQueryHandler(db *gorm.DB) CheckVehicleExistsQueryHandler {
	return CheckVehicleExistsQueryHandler{db: db}
}

// Handle executes the lookup. A miss is not an error: the response simply
// reports Exists false.
func (h CheckVehicleExistsQueryHandler) Handle(
	ctx context.Context,
	query CheckVehicleExistsQuery,
) (CheckVehicleExistsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckVehicleExistsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.brand,
			v.model,
			v.year,
			v.license_plate,
			v.vin,
			v.mileage,
			c.id,
			c.name,
			c.phone
		FROM vehicles v
		JOIN customers c ON c.id = v.customer_id
		WHERE (? = '' OR v.license_plate = ?)
		  AND (? = '' OR v.vin = ?)
		LIMIT 1
	`,
		query.LicensePlate(), query.LicensePlate(),
		query.VIN(), query.VIN(),
	).Row()

	var (
		response   CheckVehicleExistsQueryResponse
		vehicleID  uuid.UUID
		customerID uuid.UUID
	)
	err := row.Scan(
		&vehicleID,
		&response.Brand,
		&response.Model,
		&response.Year,
		&response.LicensePlate,
		&response.VIN,
		&response.Mileage,
		&customerID,
		&response.CustomerName,
		&response.CustomerPhone,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return CheckVehicleExistsQueryResponse{Exists: false}, nil
	}
	if err != nil {
		return CheckVehicleExistsQueryResponse{}, err
	}

	if response.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return CheckVehicleExistsQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return CheckVehicleExistsQueryResponse{}, err
	}

	response.Exists = true
	return response, nil
}
