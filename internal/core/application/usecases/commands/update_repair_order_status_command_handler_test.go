package commands_test

import (
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuotedOrder(t *testing.T, id kernel.UUID) *repairorder.RepairOrder {
	t.Helper()
	order := newInspectedOrder(t, id)
	require.NoError(t, order.UpdateRepairItems(
		[]repairorder.RepairItem{mustRepairItem(t, "replace pads", "350")}, nil,
	))
	return order
}

func TestUpdateRepairOrderStatusCommandHandler_Handle_Dispatch(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := newQuotedOrder(t, orderID)
	mechanicID := kernel.NewUUID()

	cmd, err := commands.NewUpdateRepairOrderStatusCommand(
		orderID, repairorder.Repairing,
		repairorder.StatusUpdate{MechanicID: &mechanicID},
	)
	require.NoError(t, err)

	orderRepo := new(MockRepairOrderRepository)
	uow := new(MockRepairOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RepairOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(order, nil).Once(),
		orderRepo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRepairOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateRepairOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, repairorder.Repairing, order.Status())
	require.NotNil(t, order.MechanicID())
	assert.True(t, order.MechanicID().IsEqual(mechanicID))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateRepairOrderStatusCommandHandler_Handle_Delivery(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := newQuotedOrder(t, orderID)
	require.NoError(t, order.ChangeStatus(repairorder.Repairing, repairorder.StatusUpdate{}))
	done := time.Date(2025, 6, 21, 17, 30, 0, 0, time.UTC)
	require.NoError(t, order.ChangeStatus(repairorder.Completed, repairorder.StatusUpdate{
		ActualCompletionTime: &done,
	}))

	signature := "Wang Lei"
	handover := done.Add(2 * time.Hour)
	cmd, err := commands.NewUpdateRepairOrderStatusCommand(
		orderID, repairorder.Delivered,
		repairorder.StatusUpdate{DeliveryTime: &handover, CustomerSignature: &signature},
	)
	require.NoError(t, err)

	orderRepo := new(MockRepairOrderRepository)
	uow := new(MockRepairOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RepairOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(order, nil).Once(),
		orderRepo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRepairOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateRepairOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, repairorder.Delivered, order.Status())
	assert.Equal(t, "Wang Lei", order.CustomerSignature())

	uow.AssertExpectations(t)
}

func TestUpdateRepairOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := newPendingOrder(t, orderID)

	// Pending straight to Delivered skips the whole lifecycle.
	cmd, err := commands.NewUpdateRepairOrderStatusCommand(
		orderID, repairorder.Delivered, repairorder.StatusUpdate{},
	)
	require.NoError(t, err)

	orderRepo := new(MockRepairOrderRepository)
	uow := new(MockRepairOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RepairOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRepairOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateRepairOrderStatusCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	assert.Equal(t, repairorder.Pending, order.Status())

	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewUpdateRepairOrderStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateRepairOrderStatusCommand(
		kernel.NewUUID(), repairorder.Status(99), repairorder.StatusUpdate{},
	)
	require.Error(t, err)
}
