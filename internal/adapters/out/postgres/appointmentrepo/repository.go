package appointmentrepo

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/appointment"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAppointmentRepository implements AppointmentRepository using GORM.
type GormAppointmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAppointmentRepository creates a new GORM appointment repository.
func NewGormAppointmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAppointmentRepository {
	return &GormAppointmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new appointment to the database.
func (r *GormAppointmentRepository) Add(ctx context.Context, aggregate *appointment.Appointment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing appointment to the database.
func (r *GormAppointmentRepository) Update(ctx context.Context, aggregate *appointment.Appointment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AppointmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("appointment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an appointment by ID.
func (r *GormAppointmentRepository) Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AppointmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("appointment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetConfirmedBetween returns confirmed appointments booked within the given
// half-open interval [from, to), soonest first. Used by the reminder job.
func (r *GormAppointmentRepository) GetConfirmedBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*appointment.Appointment, error) {
	var dtos []AppointmentDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND appointment_date >= ? AND appointment_date < ?",
			string(appointment.StatusConfirmed), from, to).
		Order("appointment_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	appointments := make([]*appointment.Appointment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		appointments = append(appointments, aggregate)
	}
	return appointments, nil
}
