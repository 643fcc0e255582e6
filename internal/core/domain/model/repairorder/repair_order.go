package repairorder

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

// Domain errors for repair-order operations.
var (
	// ErrRepairOrderIsNotConstructed is returned when using an improperly
	// initialized RepairOrder.
	ErrRepairOrderIsNotConstructed = errors.New(
		"RepairOrder must be created via NewRepairOrder or RestoreRepairOrder")
	// ErrInspectionItemsAreRequired is returned when an inspection update
	// carries an empty sheet.
	ErrInspectionItemsAreRequired = errs.NewValueIsRequiredError("inspectionItems")
	// ErrRepairItemsAreRequired is returned when a quote update carries no
	// repair items.
	ErrRepairItemsAreRequired = errs.NewValueIsRequiredError("repairItems")
)

// RepairOrder is the aggregate root of the repair workflow. It owns the
// inspection sheet, the quoted repair items with their parts, the derived
// monetary totals, and the lifecycle status.
//
// Invariants maintained by the aggregate:
//   - orderNo matches the generator format and never changes after creation
//   - customerID and vehicleID are set once at intake and never reassigned
//   - amounts are always derived from the current repair items
//     (Total = Parts + Labor; see CalculateAmounts)
//   - status only moves along the transition table in status.go
//
// Concurrency: the aggregate carries the version it was read at; the
// persistence adapter compares it on update and rejects stale writes with a
// version conflict instead of silently losing a concurrent update.
type RepairOrder struct {
	id       kernel.UUID
	orderNo  OrderNo
	customer kernel.UUID
	vehicle  kernel.UUID

	// mileage is the odometer snapshot taken at intake
	mileage int

	faultDesc string
	remark    string

	inspectionItems []InspectionItem
	// customerItems holds customer-reported concerns as an opaque JSON blob;
	// it is stored alongside the inspection sheet without a fixed schema
	customerItems json.RawMessage

	repairItems []RepairItem
	amounts     Amounts

	status Status

	mechanicID  *kernel.UUID
	inspectorID *kernel.UUID

	estimatedCompletionTime *time.Time
	actualCompletionTime    *time.Time
	deliveryTime            *time.Time

	// customerSignature is an opaque encoded image captured at delivery
	customerSignature string

	// version is the optimistic-concurrency token as read from storage
	version int64

	guard guard.ConstructorGuard
}

// NewRepairOrder creates a repair order at intake. The order starts in
// Pending status with no inspection sheet, no repair items, and zero totals.
//
// Parameters:
//   - id: aggregate identifier
//   - orderNo: freshly generated order number (see GenerateOrderNo)
//   - customerID, vehicleID: references into the customer and vehicle
//     directories, owned there and never copied
//   - mileage: odometer reading at intake (must be non-negative)
//   - faultDesc, remark: optional free text
func NewRepairOrder(
	id kernel.UUID,
	orderNo OrderNo,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	mileage int,
	faultDesc string,
	remark string,
) (*RepairOrder, error) {
	order := &RepairOrder{
		status:    Pending,
		amounts:   ZeroAmounts(),
		faultDesc: faultDesc,
		remark:    remark,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNo(orderNo),
		order.setCustomerID(customerID),
		order.setVehicleID(vehicleID),
		order.setMileage(mileage),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreRepairOrder reconstructs a repair order from persistent storage.
// Totals are recomputed from the restored repair items so the derived-amount
// invariant holds even if the stored columns drifted.
func RestoreRepairOrder(
	id kernel.UUID,
	orderNo OrderNo,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	mileage int,
	faultDesc string,
	remark string,
	inspectionItems []InspectionItem,
	customerItems json.RawMessage,
	repairItems []RepairItem,
	status Status,
	mechanicID *kernel.UUID,
	inspectorID *kernel.UUID,
	estimatedCompletionTime *time.Time,
	actualCompletionTime *time.Time,
	deliveryTime *time.Time,
	customerSignature string,
	version int64,
) (*RepairOrder, error) {
	order := &RepairOrder{
		faultDesc:               faultDesc,
		remark:                  remark,
		customerItems:           customerItems,
		mechanicID:              mechanicID,
		inspectorID:             inspectorID,
		estimatedCompletionTime: estimatedCompletionTime,
		actualCompletionTime:    actualCompletionTime,
		deliveryTime:            deliveryTime,
		customerSignature:       customerSignature,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNo(orderNo),
		order.setCustomerID(customerID),
		order.setVehicleID(vehicleID),
		order.setMileage(mileage),
		order.setStatus(status),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	order.inspectionItems = make([]InspectionItem, len(inspectionItems))
	copy(order.inspectionItems, inspectionItems)

	order.repairItems = make([]RepairItem, len(repairItems))
	copy(order.repairItems, repairItems)
	order.amounts = CalculateAmounts(order.repairItems)

	return order, nil
}

// Validate ensures the RepairOrder was created through a constructor.
func (o *RepairOrder) Validate() error {
	if o == nil {
		return ErrRepairOrderIsNotConstructed
	}
	return o.guard.Validate(ErrRepairOrderIsNotConstructed)
}

// IsEqual compares two repair orders by identifier.
func (o *RepairOrder) IsEqual(other *RepairOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the aggregate identifier.
func (o *RepairOrder) ID() kernel.UUID {
	return o.id
}

// OrderNo returns the immutable order number.
func (o *RepairOrder) OrderNo() OrderNo {
	return o.orderNo
}

// CustomerID returns the owning customer reference.
func (o *RepairOrder) CustomerID() kernel.UUID {
	return o.customer
}

// VehicleID returns the vehicle reference.
func (o *RepairOrder) VehicleID() kernel.UUID {
	return o.vehicle
}

// Mileage returns the odometer snapshot taken at intake.
func (o *RepairOrder) Mileage() int {
	return o.mileage
}

// FaultDesc returns the customer-reported fault description.
func (o *RepairOrder) FaultDesc() string {
	return o.faultDesc
}

// Remark returns the free-text remark.
func (o *RepairOrder) Remark() string {
	return o.remark
}

// InspectionItems returns the inspection sheet. The returned slice is a copy.
func (o *RepairOrder) InspectionItems() []InspectionItem {
	out := make([]InspectionItem, len(o.inspectionItems))
	copy(out, o.inspectionItems)
	return out
}

// CustomerItems returns the customer-reported concerns blob, nil when absent.
func (o *RepairOrder) CustomerItems() json.RawMessage {
	return o.customerItems
}

// RepairItems returns the quoted repair items. The returned slice is a copy.
func (o *RepairOrder) RepairItems() []RepairItem {
	out := make([]RepairItem, len(o.repairItems))
	copy(out, o.repairItems)
	return out
}

// Amounts returns the derived monetary totals.
func (o *RepairOrder) Amounts() Amounts {
	return o.amounts
}

// Status returns the current lifecycle status.
func (o *RepairOrder) Status() Status {
	return o.status
}

// MechanicID returns the assigned mechanic, nil when unassigned.
func (o *RepairOrder) MechanicID() *kernel.UUID {
	return o.mechanicID
}

// InspectorID returns the assigned inspector, nil when unassigned.
func (o *RepairOrder) InspectorID() *kernel.UUID {
	return o.inspectorID
}

// EstimatedCompletionTime returns the quoted completion estimate.
func (o *RepairOrder) EstimatedCompletionTime() *time.Time {
	return o.estimatedCompletionTime
}

// ActualCompletionTime returns when the work actually finished.
func (o *RepairOrder) ActualCompletionTime() *time.Time {
	return o.actualCompletionTime
}

// DeliveryTime returns when the vehicle was handed back.
func (o *RepairOrder) DeliveryTime() *time.Time {
	return o.deliveryTime
}

// CustomerSignature returns the encoded signature image, empty before delivery.
func (o *RepairOrder) CustomerSignature() string {
	return o.customerSignature
}

// Version returns the optimistic-concurrency token this aggregate was read at.
func (o *RepairOrder) Version() int64 {
	return o.version
}

// UpdateInspection replaces the inspection sheet wholesale and moves the
// order to Inspecting. Legal from Pending (first inspection) and from
// Inspecting (the sheet is corrected before quoting); any later state
// rejects the update.
//
// customerItems is an optional schemaless blob of customer-reported
// concerns stored alongside the sheet. inspectorID optionally records the
// inspecting principal.
func (o *RepairOrder) UpdateInspection(
	items []InspectionItem,
	customerItems json.RawMessage,
	inspectorID *kernel.UUID,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrInspectionItemsAreRequired
	}
	if inspectorID != nil {
		if err := inspectorID.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := o.status.TransitionTo(Inspecting)
	if err != nil {
		return err
	}

	o.inspectionItems = make([]InspectionItem, len(items))
	copy(o.inspectionItems, items)
	o.customerItems = customerItems
	if inspectorID != nil {
		o.inspectorID = inspectorID
	}
	o.status = newStatus
	return nil
}

// UpdateRepairItems replaces the quoted repair items wholesale, recomputes
// the derived totals, and moves the order to Quoted. Legal from Inspecting
// (first quote) and from Quoted (the quote is revised). A caller-supplied
// total is never trusted; the totals always come from CalculateAmounts.
func (o *RepairOrder) UpdateRepairItems(items []RepairItem, estimatedCompletionTime *time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrRepairItemsAreRequired
	}

	newStatus, err := o.status.TransitionTo(Quoted)
	if err != nil {
		return err
	}

	o.repairItems = make([]RepairItem, len(items))
	copy(o.repairItems, items)
	o.amounts = CalculateAmounts(o.repairItems)
	if estimatedCompletionTime != nil {
		o.estimatedCompletionTime = estimatedCompletionTime
	}
	o.status = newStatus
	return nil
}

// StatusUpdate carries the optional fields merged into the order by
// ChangeStatus. Nil fields are left untouched; supplied fields overwrite.
type StatusUpdate struct {
	MechanicID           *kernel.UUID
	InspectorID          *kernel.UUID
	ActualCompletionTime *time.Time
	DeliveryTime         *time.Time
	CustomerSignature    *string
}

// ChangeStatus drives an explicit lifecycle transition and merges the
// supplied personnel and timestamp fields into the order. The transition is
// checked against the table in status.go; an illegal move is rejected with a
// validation error rather than accepted silently.
func (o *RepairOrder) ChangeStatus(next Status, update StatusUpdate) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if update.MechanicID != nil {
		if err := update.MechanicID.Validate(); err != nil {
			return err
		}
	}
	if update.InspectorID != nil {
		if err := update.InspectorID.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	if update.MechanicID != nil {
		o.mechanicID = update.MechanicID
	}
	if update.InspectorID != nil {
		o.inspectorID = update.InspectorID
	}
	if update.ActualCompletionTime != nil {
		o.actualCompletionTime = update.ActualCompletionTime
	}
	if update.DeliveryTime != nil {
		o.deliveryTime = update.DeliveryTime
	}
	if update.CustomerSignature != nil {
		o.customerSignature = *update.CustomerSignature
	}

	o.status = newStatus
	return nil
}

func (o *RepairOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *RepairOrder) setOrderNo(orderNo OrderNo) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}
	o.orderNo = orderNo
	return nil
}

func (o *RepairOrder) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customer = id
	return nil
}

func (o *RepairOrder) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.vehicle = id
	return nil
}

func (o *RepairOrder) setMileage(mileage int) error {
	if mileage < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"mileage",
			fmt.Errorf("%d is negative", mileage),
		)
	}
	o.mileage = mileage
	return nil
}

func (o *RepairOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *RepairOrder) setVersion(version int64) error {
	if version <= 0 {
		return errs.NewVersionIsInvalidError(
			"version",
			fmt.Errorf("%d is not greater than 0", version),
		)
	}
	o.version = version
	return nil
}
