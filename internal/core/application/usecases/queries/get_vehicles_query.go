package queries

import (
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var ErrGetVehiclesQueryIsNotConstructed = errors.New(
	"GetVehiclesQuery must be created via NewGetVehiclesQuery constructor",
)

// GetVehiclesQuery retrieves a page of the vehicle directory. An optional
// keyword matches against license plate, VIN, brand, and model.
type GetVehiclesQuery struct {
	page    int
	size    int
	keyword string

	guard guard.ConstructorGuard
}

// NewGetVehiclesQuery creates a directory query.
func NewGetVehiclesQuery(page, size int, keyword string) (GetVehiclesQuery, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		return GetVehiclesQuery{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}

	return GetVehiclesQuery{
		page:    page,
		size:    size,
		keyword: keyword,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetVehiclesQuery) Page() int { return q.page }

// Size returns the page size.
func (q GetVehiclesQuery) Size() int { return q.size }

// Keyword returns the plate/VIN/brand/model filter, empty when absent.
func (q GetVehiclesQuery) Keyword() string { return q.keyword }

// Offset returns the row offset for the requested page.
func (q GetVehiclesQuery) Offset() int { return (q.page - 1) * q.size }

// VehicleSummary is one row of the vehicle directory with its owner.
type VehicleSummary struct {
	ID           kernel.UUID
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	VIN          string
	Mileage      int

	CustomerID   kernel.UUID
	CustomerName string
}

// GetVehiclesQueryResponse is one page of the directory plus the total row
// count for pagination.
type GetVehiclesQueryResponse struct {
	Total    int64
	Vehicles []VehicleSummary
}
