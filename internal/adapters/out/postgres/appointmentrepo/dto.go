// Package appointmentrepo provides data transfer objects and mapping
// functions for appointment persistence.
package appointmentrepo

import (
	"time"

	"autoshop/internal/core/domain/model/appointment"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AppointmentDTO represents the database structure for persisting appointment
// aggregates.
type AppointmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index;not null"`
	VehicleID       uuid.UUID `gorm:"type:uuid;index;not null"`
	AppointmentDate time.Time `gorm:"not null;index"`
	ServiceType     string    `gorm:"size:16;not null"`
	Description     string    `gorm:"size:1024"`
	Remark          string    `gorm:"size:1024"`
	Status          string    `gorm:"size:16;not null;index"`
	CancelReason    string    `gorm:"size:512"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for appointment entities.
func (AppointmentDTO) TableName() string {
	return "appointments"
}

// fromDomain converts an appointment aggregate to its database representation.
func fromDomain(aggregate *appointment.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		VehicleID:       aggregate.VehicleID().Bytes(),
		AppointmentDate: aggregate.Date(),
		ServiceType:     string(aggregate.ServiceType()),
		Description:     aggregate.Description(),
		Remark:          aggregate.Remark(),
		Status:          string(aggregate.Status()),
		CancelReason:    aggregate.CancelReason(),
	}
}

// toDomain converts a database DTO to an appointment aggregate.
func toDomain(dto AppointmentDTO) (*appointment.Appointment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	return appointment.RestoreAppointment(
		id, customerID, vehicleID,
		dto.AppointmentDate,
		appointment.ServiceType(dto.ServiceType),
		dto.Description, dto.Remark,
		appointment.Status(dto.Status),
		dto.CancelReason,
	)
}
