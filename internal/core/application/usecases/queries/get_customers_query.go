package queries

import (
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves a page of the customer directory. An optional
// keyword matches against name and phone.
type GetCustomersQuery struct {
	page    int
	size    int
	keyword string

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a directory query.
func NewGetCustomersQuery(page, size int, keyword string) (GetCustomersQuery, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		return GetCustomersQuery{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}

	return GetCustomersQuery{
		page:    page,
		size:    size,
		keyword: keyword,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetCustomersQuery) Page() int { return q.page }

// Size returns the page size.
func (q GetCustomersQuery) Size() int { return q.size }

// Keyword returns the name/phone filter, empty when absent.
func (q GetCustomersQuery) Keyword() string { return q.keyword }

// Offset returns the row offset for the requested page.
func (q GetCustomersQuery) Offset() int { return (q.page - 1) * q.size }

// CustomerSummary is one row of the customer directory.
type CustomerSummary struct {
	ID           kernel.UUID
	Name         string
	CustomerType string
	CompanyName  string
	Phone        string
	Email        string
	Address      string
	VehicleCount int
}

// GetCustomersQueryResponse is one page of the directory plus the total row
// count for pagination.
type GetCustomersQueryResponse struct {
	Total     int64
	Customers []CustomerSummary
}
