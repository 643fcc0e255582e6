package commands

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"
	"autoshop/internal/pkg/guard"
)

var ErrUpdateRepairOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateRepairOrderStatusCommand must be created via NewUpdateRepairOrderStatusCommand constructor",
)

// UpdateRepairOrderStatusCommand requests an explicit lifecycle transition
// with optional personnel and timestamp fields merged in alongside it.
// Dispatching to a mechanic, completing the work, and handing the vehicle
// back to the customer all go through this command.
type UpdateRepairOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  repairorder.Status
	update  repairorder.StatusUpdate

	guard guard.ConstructorGuard
}

// NewUpdateRepairOrderStatusCommand creates a status transition command.
// The target status must be a known lifecycle state; whether the transition
// itself is legal is decided by the aggregate when handled.
func NewUpdateRepairOrderStatusCommand(
	orderID kernel.UUID,
	status repairorder.Status,
	update repairorder.StatusUpdate,
) (UpdateRepairOrderStatusCommand, error) {
	cmd := UpdateRepairOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setUpdate(update),
	); err != nil {
		return UpdateRepairOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRepairOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRepairOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target repair order identifier.
func (c UpdateRepairOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c UpdateRepairOrderStatusCommand) Status() repairorder.Status {
	return c.status
}

// Update returns the optional fields merged in with the transition.
func (c UpdateRepairOrderStatusCommand) Update() repairorder.StatusUpdate {
	return c.update
}

func (c *UpdateRepairOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateRepairOrderStatusCommand) setStatus(status repairorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateRepairOrderStatusCommand) setUpdate(update repairorder.StatusUpdate) error {
	if err := errors.Join(
		validateOptionalID(update.MechanicID),
		validateOptionalID(update.InspectorID),
		validateOptionalTime(update.ActualCompletionTime, "actualCompletionTime"),
		validateOptionalTime(update.DeliveryTime, "deliveryTime"),
	); err != nil {
		return err
	}

	c.update = update
	return nil
}

func validateOptionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}

func validateOptionalTime(t *time.Time, name string) error {
	if t == nil || !t.IsZero() {
		return nil
	}
	return errors.New(name + " must not be the zero time")
}
