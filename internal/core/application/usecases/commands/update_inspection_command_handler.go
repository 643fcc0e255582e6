package commands

import (
	"context"
)

// UpdateInspectionCommandHandler records inspection findings on a repair
// order, moving it to Inspecting. The order's state machine rejects the
// update unless the order is Pending or already Inspecting.
type UpdateInspectionCommandHandler struct {
	uowFactory RepairOrderUoWFactory
}

// NewUpdateInspectionCommandHandler creates a handler for inspection updates.
func NewUpdateInspectionCommandHandler(uowFactory RepairOrderUoWFactory) UpdateInspectionCommandHandler {
	return UpdateInspectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, replaces its inspection sheet wholesale, and
// persists it under the optimistic concurrency check of the repository.
func (h *UpdateInspectionCommandHandler) Handle(ctx context.Context, cmd UpdateInspectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := cmd.DomainItems()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.RepairOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.UpdateInspection(items, cmd.CustomerItems(), cmd.InspectorID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
