package commands

import (
	"context"

	"autoshop/internal/core/domain/model/appointment"
)

// CreateAppointmentCommandHandler books appointments. The referenced
// customer and vehicle are resolved first so a booking can never point at
// records that do not exist.
type CreateAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

// NewCreateAppointmentCommandHandler creates a handler for bookings.
func NewCreateAppointmentCommandHandler(uowFactory AppointmentUoWFactory) CreateAppointmentCommandHandler {
	return CreateAppointmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the customer and vehicle references, creates the pending
// appointment, and persists it.
func (h *CreateAppointmentCommandHandler) Handle(ctx context.Context, cmd CreateAppointmentCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}
	if _, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	booking, err := appointment.NewAppointment(
		cmd.AppointmentID(), cmd.CustomerID(), cmd.VehicleID(),
		cmd.AppointmentDate(), cmd.ServiceType(),
		cmd.Description(), cmd.Remark(),
	)
	if err != nil {
		return err
	}

	if err = uow.AppointmentRepository().Add(ctx, booking); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
