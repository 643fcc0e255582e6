package commands

import (
	"errors"

	"autoshop/internal/core/domain/model/appointment"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrUpdateAppointmentStatusCommandIsNotConstructed = errors.New(
		"UpdateAppointmentStatusCommand must be created via NewUpdateAppointmentStatusCommand constructor",
	)
	ErrCancelReasonIsRequired = errors.New("cancellation requires a reason")
)

// UpdateAppointmentStatusCommand moves an appointment through its lifecycle:
// confirm, complete, or cancel. Cancelling requires a reason.
type UpdateAppointmentStatusCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID
	status        appointment.Status
	cancelReason  string

	guard guard.ConstructorGuard
}

// NewUpdateAppointmentStatusCommand creates a status change command. The
// target status must be confirmed, completed, or cancelled; a cancellation
// must carry a non-empty reason.
func NewUpdateAppointmentStatusCommand(
	appointmentID kernel.UUID,
	status appointment.Status,
	cancelReason string,
) (UpdateAppointmentStatusCommand, error) {
	cmd := UpdateAppointmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setStatus(status, cancelReason),
	); err != nil {
		return UpdateAppointmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAppointmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAppointmentStatusCommandIsNotConstructed)
}

// AppointmentID returns the target appointment identifier.
func (c UpdateAppointmentStatusCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

// Status returns the requested target status.
func (c UpdateAppointmentStatusCommand) Status() appointment.Status {
	return c.status
}

// CancelReason returns the cancellation reason, empty unless cancelling.
func (c UpdateAppointmentStatusCommand) CancelReason() string {
	return c.cancelReason
}

func (c *UpdateAppointmentStatusCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appointmentID = id
	return nil
}

func (c *UpdateAppointmentStatusCommand) setStatus(status appointment.Status, cancelReason string) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == appointment.StatusCancelled && cancelReason == "" {
		return ErrCancelReasonIsRequired
	}

	c.status = status
	c.cancelReason = cancelReason
	return nil
}
