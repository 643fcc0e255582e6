package commands

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/appointment"
)

// ErrAppointmentStatusIsNotSupported is returned for a target status the
// lifecycle has no operation for, such as moving back to pending.
var ErrAppointmentStatusIsNotSupported = errors.New("appointment status is not supported")

// UpdateAppointmentStatusCommandHandler drives appointment lifecycle
// changes. Each target status maps onto one aggregate operation, which
// enforces the legal transitions itself.
type UpdateAppointmentStatusCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

// NewUpdateAppointmentStatusCommandHandler creates a handler for appointment
// status changes.
func NewUpdateAppointmentStatusCommandHandler(
	uowFactory AppointmentUoWFactory,
) UpdateAppointmentStatusCommandHandler {
	return UpdateAppointmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the appointment, applies the requested lifecycle operation,
// and persists it.
func (h *UpdateAppointmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateAppointmentStatusCommand,
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

	appointmentRepo := uow.AppointmentRepository()
	booking, err := appointmentRepo.Get(ctx, cmd.AppointmentID())
	if err != nil {
		return err
	}

	switch cmd.Status() {
	case appointment.StatusConfirmed:
		err = booking.Confirm()
	case appointment.StatusCompleted:
		err = booking.Complete()
	case appointment.StatusCancelled:
		err = booking.Cancel(cmd.CancelReason())
	default:
		err = ErrAppointmentStatusIsNotSupported
	}
	if err != nil {
		return err
	}

	if err = appointmentRepo.Update(ctx, booking); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
