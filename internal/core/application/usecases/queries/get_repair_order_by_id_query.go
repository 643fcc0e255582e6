package queries

import (
	"encoding/json"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRepairOrderByIDQueryIsNotConstructed = errors.New(
	"GetRepairOrderByIDQuery must be created via NewGetRepairOrderByIDQuery constructor",
)

// GetRepairOrderByIDQuery retrieves one repair order in full detail:
// the order itself, its inspection sheet, its quoted repair items with
// parts, and the customer and vehicle it belongs to.
type GetRepairOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRepairOrderByIDQuery creates a detail query.
func NewGetRepairOrderByIDQuery(orderID kernel.UUID) (GetRepairOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetRepairOrderByIDQuery{}, err
	}

	return GetRepairOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRepairOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetRepairOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetRepairOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// InspectionItemDetail is one row of the inspection sheet in the read model.
type InspectionItemDetail struct {
	Name   string
	Result string
	Remark string
}

// PartDetail is one part line of a quoted repair item in the read model.
type PartDetail struct {
	PartID    *kernel.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// RepairItemDetail is one quoted labor line with its parts.
type RepairItemDetail struct {
	Name  string
	Price decimal.Decimal
	Parts []PartDetail
}

// GetRepairOrderByIDQueryResponse is the full detail read model.
type GetRepairOrderByIDQueryResponse struct {
	ID        kernel.UUID
	OrderNo   string
	Status    string
	Mileage   int
	FaultDesc string
	Remark    string

	InspectionItems []InspectionItemDetail
	CustomerItems   json.RawMessage
	RepairItems     []RepairItemDetail

	PartsAmount decimal.Decimal
	LaborAmount decimal.Decimal
	TotalAmount decimal.Decimal

	MechanicID              *kernel.UUID
	InspectorID             *kernel.UUID
	EstimatedCompletionTime *time.Time
	ActualCompletionTime    *time.Time
	DeliveryTime            *time.Time
	CustomerSignature       string
	Version                 int64
	CreatedAt               time.Time

	CustomerID    kernel.UUID
	CustomerName  string
	CustomerPhone string

	VehicleID    kernel.UUID
	VehicleBrand string
	VehicleModel string
	LicensePlate string
	VIN          string
}
