package ports

import (
	"context"
	"time"

	"autoshop/internal/core/domain/model/appointment"
	"autoshop/internal/core/domain/model/kernel"
)

// AppointmentRepository defines the persistence contract for appointment
// aggregates.
type AppointmentRepository interface {
	// Add persists a new appointment aggregate to storage.
	Add(ctx context.Context, aggregate *appointment.Appointment) error

	// Update persists changes to an existing appointment aggregate.
	Update(ctx context.Context, aggregate *appointment.Appointment) error

	// Get retrieves an appointment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error)

	// GetConfirmedBetween retrieves confirmed appointments whose booked date
	// falls within [from, to). Used by the reminder job.
	GetConfirmedBetween(ctx context.Context, from, to time.Time) ([]*appointment.Appointment, error)
}
