package commands

import (
	"context"
)

// UpdateRepairOrderStatusCommandHandler drives explicit lifecycle
// transitions on a repair order. The transition table lives in the
// aggregate; this handler only loads, applies, and persists.
type UpdateRepairOrderStatusCommandHandler struct {
	uowFactory RepairOrderUoWFactory
}

// NewUpdateRepairOrderStatusCommandHandler creates a handler for status
// transitions.
func NewUpdateRepairOrderStatusCommandHandler(
	uowFactory RepairOrderUoWFactory,
) UpdateRepairOrderStatusCommandHandler {
	return UpdateRepairOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the requested transition with its merge-in
// fields, and persists it. An illegal transition surfaces as a validation
// error from the aggregate and nothing is written.
func (h *UpdateRepairOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateRepairOrderStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = order.ChangeStatus(cmd.Status(), cmd.Update()); err != nil {
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
