package repairorder

import (
	"errors"
	"fmt"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Part is one component consumed by a repair item: either a catalog-linked
// part (partID set) or a free-text one. Quantity must be positive and the
// unit price non-negative.
type Part struct {
	partID    *kernel.UUID
	name      string
	quantity  int
	unitPrice decimal.Decimal
}

// NewPart creates a consumed part. partID is optional and links to the part
// catalog when present.
func NewPart(partID *kernel.UUID, name string, quantity int, unitPrice decimal.Decimal) (Part, error) {
	var errList []error

	if partID != nil {
		if err := partID.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("part name"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"part quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		))
	}
	if unitPrice.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"part unit price",
			fmt.Errorf("%s is negative", unitPrice),
		))
	}

	if err := errors.Join(errList...); err != nil {
		return Part{}, err
	}

	return Part{partID: partID, name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

// PartID returns the catalog reference, nil for free-text parts.
func (p Part) PartID() *kernel.UUID {
	return p.partID
}

// Name returns the part name.
func (p Part) Name() string {
	return p.name
}

// Quantity returns the number of units consumed.
func (p Part) Quantity() int {
	return p.quantity
}

// UnitPrice returns the price per unit.
func (p Part) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// Subtotal returns unitPrice × quantity for this part line.
func (p Part) Subtotal() decimal.Decimal {
	return p.unitPrice.Mul(decimal.NewFromInt(int64(p.quantity)))
}

// RepairItem is one billable repair task on the quote: a labor price plus
// the parts the task consumes. The quote update replaces the whole list.
type RepairItem struct {
	name  string
	price decimal.Decimal
	parts []Part
}

// NewRepairItem creates a repair task. Name is required and price is the
// labor charge for the task (non-negative). parts may be empty.
func NewRepairItem(name string, price decimal.Decimal, parts []Part) (RepairItem, error) {
	var errList []error

	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("repair item name"))
	}
	if price.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"repair item price",
			fmt.Errorf("%s is negative", price),
		))
	}

	if err := errors.Join(errList...); err != nil {
		return RepairItem{}, err
	}

	item := RepairItem{name: name, price: price}
	item.parts = make([]Part, len(parts))
	copy(item.parts, parts)
	return item, nil
}

// Name returns the repair task name.
func (r RepairItem) Name() string {
	return r.name
}

// Price returns the labor price for this task.
func (r RepairItem) Price() decimal.Decimal {
	return r.price
}

// Parts returns the consumed parts. The returned slice is a copy.
func (r RepairItem) Parts() []Part {
	out := make([]Part, len(r.parts))
	copy(out, r.parts)
	return out
}

// PartsSubtotal returns the summed part cost of this task.
func (r RepairItem) PartsSubtotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range r.parts {
		total = total.Add(p.Subtotal())
	}
	return total
}
