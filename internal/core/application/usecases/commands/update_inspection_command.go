package commands

import (
	"encoding/json"
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"
	"autoshop/internal/pkg/guard"
)

var (
	ErrUpdateInspectionCommandIsNotConstructed = errors.New(
		"UpdateInspectionCommand must be created via NewUpdateInspectionCommand constructor",
	)
	ErrInspectionItemsAreRequired = errors.New("at least one inspection item is required")
)

// InspectionItemData is one row of an inspection sheet as submitted by the
// adapter layer, before domain validation.
type InspectionItemData struct {
	Name   string
	Result string
	Remark string
}

// UpdateInspectionCommand records the outcome of a vehicle inspection:
// a wholesale replacement of the inspection sheet plus an optional blob of
// customer-reported concerns.
type UpdateInspectionCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	items         []InspectionItemData
	customerItems json.RawMessage
	inspectorID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateInspectionCommand creates a command to record inspection findings.
// At least one inspection item is required; inspectorID is optional and, when
// present, must be a valid identifier.
func NewUpdateInspectionCommand(
	orderID kernel.UUID,
	items []InspectionItemData,
	customerItems json.RawMessage,
	inspectorID *kernel.UUID,
) (UpdateInspectionCommand, error) {
	cmd := UpdateInspectionCommand{
		customerItems: customerItems,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
		cmd.setInspectorID(inspectorID),
	); err != nil {
		return UpdateInspectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInspectionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInspectionCommandIsNotConstructed)
}

// OrderID returns the target repair order identifier.
func (c UpdateInspectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the submitted inspection sheet rows.
func (c UpdateInspectionCommand) Items() []InspectionItemData {
	return c.items
}

// CustomerItems returns the customer-reported concerns blob, nil when absent.
func (c UpdateInspectionCommand) CustomerItems() json.RawMessage {
	return c.customerItems
}

// InspectorID returns the inspecting principal, nil when not recorded.
func (c UpdateInspectionCommand) InspectorID() *kernel.UUID {
	return c.inspectorID
}

// DomainItems converts the submitted rows into validated domain inspection
// items.
func (c UpdateInspectionCommand) DomainItems() ([]repairorder.InspectionItem, error) {
	items := make([]repairorder.InspectionItem, 0, len(c.items))
	for _, data := range c.items {
		item, err := repairorder.NewInspectionItem(data.Name, data.Result, data.Remark)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *UpdateInspectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateInspectionCommand) setItems(items []InspectionItemData) error {
	if len(items) == 0 {
		return ErrInspectionItemsAreRequired
	}

	c.items = make([]InspectionItemData, len(items))
	copy(c.items, items)
	return nil
}

func (c *UpdateInspectionCommand) setInspectorID(inspectorID *kernel.UUID) error {
	if inspectorID == nil {
		return nil
	}
	if err := inspectorID.Validate(); err != nil {
		return err
	}

	c.inspectorID = inspectorID
	return nil
}
