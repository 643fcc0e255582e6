package queries

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var ErrGetAppointmentsQueryIsNotConstructed = errors.New(
	"GetAppointmentsQuery must be created via NewGetAppointmentsQuery constructor",
)

// GetAppointmentsQuery retrieves a page of the appointment book, soonest
// booking first, with customer and vehicle context joined in.
type GetAppointmentsQuery struct {
	page int
	size int

	guard guard.ConstructorGuard
}

// NewGetAppointmentsQuery creates an appointment book query.
func NewGetAppointmentsQuery(page, size int) (GetAppointmentsQuery, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		return GetAppointmentsQuery{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}

	return GetAppointmentsQuery{
		page:  page,
		size:  size,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAppointmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAppointmentsQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetAppointmentsQuery) Page() int { return q.page }

// Size returns the page size.
func (q GetAppointmentsQuery) Size() int { return q.size }

// Offset returns the row offset for the requested page.
func (q GetAppointmentsQuery) Offset() int { return (q.page - 1) * q.size }

// AppointmentSummary is one row of the appointment book.
type AppointmentSummary struct {
	ID              kernel.UUID
	AppointmentDate time.Time
	ServiceType     string
	Status          string
	Description     string
	CancelReason    string

	CustomerName  string
	CustomerPhone string
	VehicleBrand  string
	VehicleModel  string
	LicensePlate  string
}

// GetAppointmentsQueryResponse is one page of the book plus the total row
// count for pagination.
type GetAppointmentsQueryResponse struct {
	Total        int64
	Appointments []AppointmentSummary
}
