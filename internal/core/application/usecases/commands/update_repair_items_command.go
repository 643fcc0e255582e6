package commands

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"
	"autoshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateRepairItemsCommandIsNotConstructed = errors.New(
		"UpdateRepairItemsCommand must be created via NewUpdateRepairItemsCommand constructor",
	)
	ErrRepairItemsAreRequired = errors.New("at least one repair item is required")
)

// PartData is one part line of a quoted repair item as submitted by the
// adapter layer.
type PartData struct {
	PartID    *kernel.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// RepairItemData is one quoted labor line with its parts.
type RepairItemData struct {
	Name  string
	Price decimal.Decimal
	Parts []PartData
}

// UpdateRepairItemsCommand replaces the quoted repair items of an order.
// Totals are always derived from the items server-side; any client-computed
// total is ignored.
type UpdateRepairItemsCommand struct { //nolint:recvcheck //using for validation
	orderID                 kernel.UUID
	items                   []RepairItemData
	estimatedCompletionTime *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateRepairItemsCommand creates a command to quote a repair order.
// At least one repair item is required.
func NewUpdateRepairItemsCommand(
	orderID kernel.UUID,
	items []RepairItemData,
	estimatedCompletionTime *time.Time,
) (UpdateRepairItemsCommand, error) {
	cmd := UpdateRepairItemsCommand{
		estimatedCompletionTime: estimatedCompletionTime,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return UpdateRepairItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRepairItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRepairItemsCommandIsNotConstructed)
}

// OrderID returns the target repair order identifier.
func (c UpdateRepairItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the submitted repair item lines.
func (c UpdateRepairItemsCommand) Items() []RepairItemData {
	return c.items
}

// EstimatedCompletionTime returns the promised completion time, nil when
// not supplied.
func (c UpdateRepairItemsCommand) EstimatedCompletionTime() *time.Time {
	return c.estimatedCompletionTime
}

// DomainItems converts the submitted lines into validated domain repair
// items.
func (c UpdateRepairItemsCommand) DomainItems() ([]repairorder.RepairItem, error) {
	items := make([]repairorder.RepairItem, 0, len(c.items))
	for _, data := range c.items {
		parts := make([]repairorder.Part, 0, len(data.Parts))
		for _, partData := range data.Parts {
			part, err := repairorder.NewPart(
				partData.PartID, partData.Name, partData.Quantity, partData.UnitPrice,
			)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}

		item, err := repairorder.NewRepairItem(data.Name, data.Price, parts)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *UpdateRepairItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateRepairItemsCommand) setItems(items []RepairItemData) error {
	if len(items) == 0 {
		return ErrRepairItemsAreRequired
	}

	c.items = make([]RepairItemData, len(items))
	copy(c.items, items)
	return nil
}
