package commands

import (
	"context"
)

// UpdateRepairItemsCommandHandler quotes a repair order: replaces its repair
// items, recomputes the parts/labor/total amounts, and moves it to Quoted.
// Re-quoting an already Quoted order is allowed and replaces the quote.
type UpdateRepairItemsCommandHandler struct {
	uowFactory RepairOrderUoWFactory
}

// NewUpdateRepairItemsCommandHandler creates a handler for quote updates.
func NewUpdateRepairItemsCommandHandler(uowFactory RepairOrderUoWFactory) UpdateRepairItemsCommandHandler {
	return UpdateRepairItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the quote, and persists it under the
// optimistic concurrency check of the repository.
func (h *UpdateRepairItemsCommandHandler) Handle(ctx context.Context, cmd UpdateRepairItemsCommand) error {
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

	if err = order.UpdateRepairItems(items, cmd.EstimatedCompletionTime()); err != nil {
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
