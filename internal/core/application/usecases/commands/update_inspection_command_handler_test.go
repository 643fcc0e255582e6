package commands_test

import (
	"testing"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"
	"autoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, id kernel.UUID) *repairorder.RepairOrder {
	t.Helper()
	orderNo, err := repairorder.GenerateOrderNo(repairorder.DefaultOrderNoPrefix)
	require.NoError(t, err)
	order, err := repairorder.NewRepairOrder(
		id, orderNo, kernel.NewUUID(), kernel.NewUUID(), 50000, "engine rattle", "",
	)
	require.NoError(t, err)
	return order
}

func sheet() []commands.InspectionItemData {
	return []commands.InspectionItemData{
		{Name: "brake pads", Result: "worn", Remark: "replace front pair"},
		{Name: "battery", Result: "ok"},
	}
}

func TestUpdateInspectionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := newPendingOrder(t, orderID)
	cmd, err := commands.NewUpdateInspectionCommand(orderID, sheet(), nil, nil)
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

	h := commands.NewUpdateInspectionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, repairorder.Inspecting, order.Status())
	assert.Len(t, order.InspectionItems(), 2)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateInspectionCommandHandler_Handle_IllegalState(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := newPendingOrder(t, orderID)

	// Drive the order past inspection so the sheet can no longer change.
	require.NoError(t, order.UpdateInspection(
		[]repairorder.InspectionItem{mustInspectionItem(t, "brake pads", "worn")}, nil, nil,
	))
	quoteItems := []repairorder.RepairItem{mustRepairItem(t, "replace pads", "350")}
	require.NoError(t, order.UpdateRepairItems(quoteItems, nil))
	require.NoError(t, order.ChangeStatus(repairorder.Repairing, repairorder.StatusUpdate{}))

	cmd, err := commands.NewUpdateInspectionCommand(orderID, sheet(), nil, nil)
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

	h := commands.NewUpdateInspectionCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))

	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func mustInspectionItem(t *testing.T, name, result string) repairorder.InspectionItem {
	t.Helper()
	item, err := repairorder.NewInspectionItem(name, result, "")
	require.NoError(t, err)
	return item
}

func mustRepairItem(t *testing.T, name, price string) repairorder.RepairItem {
	t.Helper()
	item, err := repairorder.NewRepairItem(name, decimal.RequireFromString(price), nil)
	require.NoError(t, err)
	return item
}

func TestUpdateInspectionCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateInspectionCommand(orderID, sheet(), nil, nil)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("repairOrder", orderID)

	orderRepo := new(MockRepairOrderRepository)
	uow := new(MockRepairOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RepairOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRepairOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateInspectionCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	var target *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &target)
	uow.AssertExpectations(t)
}
