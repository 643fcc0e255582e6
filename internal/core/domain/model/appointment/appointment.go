// Package appointment implements the appointment aggregate: a customer
// booking a vehicle in for a service on a date. Cancelling an appointment
// requires a reason; that conditional-requirement invariant is enforced here
// rather than trusted to callers.
package appointment

import (
	"errors"
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

// Domain errors for appointment operations.
var (
	// ErrAppointmentIsNotConstructed is returned when using an improperly
	// initialized Appointment.
	ErrAppointmentIsNotConstructed = errors.New(
		"Appointment must be created via NewAppointment or RestoreAppointment")
	// ErrCancelReasonIsRequired is returned when cancelling without a reason.
	ErrCancelReasonIsRequired = errs.NewValueIsRequiredError("cancelReason")
	// ErrAppointmentDateIsRequired is returned when the booking date is zero.
	ErrAppointmentDateIsRequired = errs.NewValueIsRequiredError("appointmentDate")
)

// ServiceType classifies what the customer is booking the vehicle in for.
type ServiceType string

const (
	ServiceMaintenance ServiceType = "maintenance"
	ServiceRepair      ServiceType = "repair"
	ServiceInspection  ServiceType = "inspection"
	ServiceOther       ServiceType = "other"
)

// Validate checks the service type value.
func (s ServiceType) Validate() error {
	switch s {
	case ServiceMaintenance, ServiceRepair, ServiceInspection, ServiceOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceType",
			fmt.Errorf("%q is not a valid service type", string(s)),
		)
	}
}

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Validate checks the status value.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid appointment status", string(s)),
		)
	}
}

// Appointment is the aggregate root for service bookings.
type Appointment struct {
	id              kernel.UUID
	customer        kernel.UUID
	vehicle         kernel.UUID
	appointmentDate time.Time
	serviceType     ServiceType
	description     string
	remark          string
	status          Status
	cancelReason    string

	guard guard.ConstructorGuard
}

// NewAppointment creates a pending appointment.
func NewAppointment(
	id kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	appointmentDate time.Time,
	serviceType ServiceType,
	description, remark string,
) (*Appointment, error) {
	a := &Appointment{
		status:      StatusPending,
		description: description,
		remark:      remark,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setCustomerID(customerID),
		a.setVehicleID(vehicleID),
		a.setAppointmentDate(appointmentDate),
		a.setServiceType(serviceType),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAppointment reconstructs an appointment from persistent storage.
func RestoreAppointment(
	id kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	appointmentDate time.Time,
	serviceType ServiceType,
	description, remark string,
	status Status,
	cancelReason string,
) (*Appointment, error) {
	a := &Appointment{
		description:  description,
		remark:       remark,
		cancelReason: cancelReason,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setCustomerID(customerID),
		a.setVehicleID(vehicleID),
		a.setAppointmentDate(appointmentDate),
		a.setServiceType(serviceType),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	a.status = status

	if status == StatusCancelled && cancelReason == "" {
		return nil, ErrCancelReasonIsRequired
	}

	return a, nil
}

// Validate ensures the Appointment was created through a constructor.
func (a *Appointment) Validate() error {
	if a == nil {
		return ErrAppointmentIsNotConstructed
	}
	return a.guard.Validate(ErrAppointmentIsNotConstructed)
}

// ID returns the aggregate identifier.
func (a *Appointment) ID() kernel.UUID {
	return a.id
}

// CustomerID returns the booking customer reference.
func (a *Appointment) CustomerID() kernel.UUID {
	return a.customer
}

// VehicleID returns the booked vehicle reference.
func (a *Appointment) VehicleID() kernel.UUID {
	return a.vehicle
}

// Date returns the booked date and time.
func (a *Appointment) Date() time.Time {
	return a.appointmentDate
}

// ServiceType returns what the vehicle is booked in for.
func (a *Appointment) ServiceType() ServiceType {
	return a.serviceType
}

// Description returns the optional booking description.
func (a *Appointment) Description() string {
	return a.description
}

// Remark returns the optional remark.
func (a *Appointment) Remark() string {
	return a.remark
}

// Status returns the lifecycle state.
func (a *Appointment) Status() Status {
	return a.status
}

// CancelReason returns why the appointment was cancelled, empty otherwise.
func (a *Appointment) CancelReason() string {
	return a.cancelReason
}

// Confirm moves a pending appointment to confirmed.
func (a *Appointment) Confirm() error {
	return a.transition(StatusConfirmed, StatusPending)
}

// Complete marks a confirmed appointment as completed.
func (a *Appointment) Complete() error {
	return a.transition(StatusCompleted, StatusConfirmed)
}

// Cancel cancels a pending or confirmed appointment. A non-empty reason is
// required; cancelled appointments keep the reason for later review.
func (a *Appointment) Cancel(reason string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return ErrCancelReasonIsRequired
	}
	if a.status != StatusPending && a.status != StatusConfirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("appointment in status %s cannot be cancelled", a.status),
		)
	}

	a.status = StatusCancelled
	a.cancelReason = reason
	return nil
}

func (a *Appointment) transition(next Status, allowedFrom ...Status) error {
	if err := a.Validate(); err != nil {
		return err
	}
	for _, from := range allowedFrom {
		if a.status == from {
			a.status = next
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition from %s to %s is not allowed", a.status, next),
	)
}

func (a *Appointment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Appointment) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.customer = id
	return nil
}

func (a *Appointment) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.vehicle = id
	return nil
}

func (a *Appointment) setAppointmentDate(date time.Time) error {
	if date.IsZero() {
		return ErrAppointmentDateIsRequired
	}
	a.appointmentDate = date
	return nil
}

func (a *Appointment) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	a.serviceType = serviceType
	return nil
}
