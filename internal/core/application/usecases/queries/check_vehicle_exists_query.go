// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrCheckVehicleExistsQueryIsNotConstructed = errors.New(
		"CheckVehicleExistsQuery must be created via NewCheckVehicleExistsQuery constructor",
	)
	ErrPlateOrVINIsRequired = errors.New("license plate or vin is required")
)

// CheckVehicleExistsQuery looks up a vehicle by license plate and/or VIN.
// The front desk runs it before intake to decide between the new-customer
// and existing-customer paths.
type CheckVehicleExistsQuery struct {
	licensePlate string
	vin          string

	guard guard.ConstructorGuard
}

// NewCheckVehicleExistsQuery creates a lookup query. At least one of the
// license plate or VIN must be supplied.
func NewCheckVehicleExistsQuery(licensePlate, vin string) (CheckVehicleExistsQuery, error) {
	if licensePlate == "" && vin == "" {
		return CheckVehicleExistsQuery{}, ErrPlateOrVINIsRequired
	}

	return CheckVehicleExistsQuery{
		licensePlate: licensePlate,
		vin:          vin,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckVehicleExistsQuery) Validate() error {
	return q.guard.Validate(ErrCheckVehicleExistsQueryIsNotConstructed)
}

// LicensePlate returns the plate filter, empty when not supplied.
func (q CheckVehicleExistsQuery) LicensePlate() string {
	return q.licensePlate
}

// VIN returns the VIN filter, empty when not supplied.
func (q CheckVehicleExistsQuery) VIN() string {
	return q.vin
}

// CheckVehicleExistsQueryResponse is the lookup result. When Exists is false
// the remaining fields are zero.
type CheckVehicleExistsQueryResponse struct {
	Exists bool

	VehicleID    kernel.UUID
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	VIN          string
	Mileage      int

	CustomerID    kernel.UUID
	CustomerName  string
	CustomerPhone string
}
