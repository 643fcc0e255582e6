package queries

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var ErrGetRepairOrdersQueryIsNotConstructed = errors.New(
	"GetRepairOrdersQuery must be created via NewGetRepairOrdersQuery constructor",
)

// GetRepairOrdersQuery retrieves a page of the repair order board, newest
// first, with customer and vehicle context joined in. An optional status
// filter narrows the board to one lifecycle state.
type GetRepairOrdersQuery struct {
	page   int
	size   int
	status *repairorder.Status

	guard guard.ConstructorGuard
}

// NewGetRepairOrdersQuery creates a board query. Page numbering starts at 1;
// a non-positive size falls back to the default, sizes above the cap are
// rejected.
func NewGetRepairOrdersQuery(page, size int, status *repairorder.Status) (GetRepairOrdersQuery, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		return GetRepairOrdersQuery{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetRepairOrdersQuery{}, err
		}
	}

	return GetRepairOrdersQuery{
		page:   page,
		size:   size,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRepairOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRepairOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetRepairOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetRepairOrdersQuery) Size() int {
	return q.size
}

// Status returns the optional status filter, nil when absent.
func (q GetRepairOrdersQuery) Status() *repairorder.Status {
	return q.status
}

// Offset returns the row offset for the requested page.
func (q GetRepairOrdersQuery) Offset() int {
	return (q.page - 1) * q.size
}

// RepairOrderSummary is one row of the repair order board.
type RepairOrderSummary struct {
	ID            kernel.UUID
	OrderNo       string
	Status        string
	FaultDesc     string
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	CustomerName  string
	CustomerPhone string
	VehicleBrand  string
	VehicleModel  string
	LicensePlate  string
}

// GetRepairOrdersQueryResponse is one page of the board plus the total row
// count for pagination.
type GetRepairOrdersQueryResponse struct {
	Total  int64
	Orders []RepairOrderSummary
}
