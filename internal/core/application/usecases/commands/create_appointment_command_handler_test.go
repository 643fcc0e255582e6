package commands_test

import (
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/appointment"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookingCommand(t *testing.T, customerID, vehicleID kernel.UUID) commands.CreateAppointmentCommand {
	t.Helper()
	cmd, err := commands.NewCreateAppointmentCommand(
		kernel.NewUUID(), customerID, vehicleID,
		time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
		appointment.ServiceMaintenance, "60k km service", "",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateAppointmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cust, veh := existingCustomerAndVehicle(t)
	cmd := bookingCommand(t, cust.ID(), veh.ID())

	customerRepo := new(MockCustomerRepository)
	vehicleRepo := new(MockVehicleRepository)
	appointmentRepo := new(MockAppointmentRepository)
	uow := new(MockAppointmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, cust.ID()).Return(cust, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		uow.On("AppointmentRepository").Return(appointmentRepo).Once(),
		appointmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*appointment.Appointment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAppointmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	customerRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	appointmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateAppointmentCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	customerID, vehicleID := kernel.NewUUID(), kernel.NewUUID()
	cmd := bookingCommand(t, customerID, vehicleID)

	notFound := errs.NewObjectNotFoundError("customer", customerID)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockAppointmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAppointmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	var target *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &target)
	uow.AssertExpectations(t)
}
