package commands

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/appointment"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrCreateAppointmentCommandIsNotConstructed = errors.New(
		"CreateAppointmentCommand must be created via NewCreateAppointmentCommand constructor",
	)
	ErrAppointmentDateIsRequired = errors.New("appointment date is required")
)

// CreateAppointmentCommand books a customer's vehicle in for a service on a
// date. Both the customer and the vehicle must already exist.
type CreateAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID   kernel.UUID
	customerID      kernel.UUID
	vehicleID       kernel.UUID
	appointmentDate time.Time
	serviceType     appointment.ServiceType
	description     string
	remark          string

	guard guard.ConstructorGuard
}

// NewCreateAppointmentCommand creates a booking command.
func NewCreateAppointmentCommand(
	appointmentID kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	appointmentDate time.Time,
	serviceType appointment.ServiceType,
	description, remark string,
) (CreateAppointmentCommand, error) {
	cmd := CreateAppointmentCommand{
		description: description,
		remark:      remark,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setCustomerID(customerID),
		cmd.setVehicleID(vehicleID),
		cmd.setAppointmentDate(appointmentDate),
		cmd.setServiceType(serviceType),
	); err != nil {
		return CreateAppointmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAppointmentCommandIsNotConstructed)
}

// AppointmentID returns the identifier the new appointment will carry.
func (c CreateAppointmentCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

// CustomerID returns the booking customer reference.
func (c CreateAppointmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VehicleID returns the booked vehicle reference.
func (c CreateAppointmentCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// AppointmentDate returns the requested date and time.
func (c CreateAppointmentCommand) AppointmentDate() time.Time {
	return c.appointmentDate
}

// ServiceType returns what the vehicle is booked in for.
func (c CreateAppointmentCommand) ServiceType() appointment.ServiceType {
	return c.serviceType
}

// Description returns the optional booking description.
func (c CreateAppointmentCommand) Description() string {
	return c.description
}

// Remark returns the optional remark.
func (c CreateAppointmentCommand) Remark() string {
	return c.remark
}

func (c *CreateAppointmentCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appointmentID = id
	return nil
}

func (c *CreateAppointmentCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateAppointmentCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *CreateAppointmentCommand) setAppointmentDate(date time.Time) error {
	if date.IsZero() {
		return ErrAppointmentDateIsRequired
	}

	c.appointmentDate = date
	return nil
}

func (c *CreateAppointmentCommand) setServiceType(serviceType appointment.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}
