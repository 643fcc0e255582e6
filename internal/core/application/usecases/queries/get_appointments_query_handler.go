package queries

import (
	"context"

	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAppointmentsQueryHandler serves the appointment book with direct SQL.
type GetAppointmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAppointmentsQueryHandler creates a handler for appointment book
// queries.
func NewGetAppointmentsQueryHandler(db *gorm.DB) GetAppointmentsQueryHandler {
	return GetAppointmentsQueryHandler{db: db}
}

// Handle executes the book query, soonest booking first.
func (h GetAppointmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAppointmentsQuery,
) (GetAppointmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAppointmentsQueryResponse{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM appointments`).Scan(&total).Error
	if err != nil {
		return GetAppointmentsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.appointment_date,
			a.service_type,
			a.status,
			a.description,
			a.cancel_reason,
			c.name,
			c.phone,
			v.brand,
			v.model,
			v.license_plate
		FROM appointments a
		JOIN customers c ON c.id = a.customer_id
		JOIN vehicles v ON v.id = a.vehicle_id
		ORDER BY a.appointment_date
		LIMIT ? OFFSET ?
	`, query.Size(), query.Offset()).Rows()
	if err != nil {
		return GetAppointmentsQueryResponse{}, err
	}
	defer rows.Close()

	appointments := make([]AppointmentSummary, 0, query.Size())
	for rows.Next() {
		var (
			summary AppointmentSummary
			id      uuid.UUID
		)
		err = rows.Scan(
			&id,
			&summary.AppointmentDate,
			&summary.ServiceType,
			&summary.Status,
			&summary.Description,
			&summary.CancelReason,
			&summary.CustomerName,
			&summary.CustomerPhone,
			&summary.VehicleBrand,
			&summary.VehicleModel,
			&summary.LicensePlate,
		)
		if err != nil {
			return GetAppointmentsQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetAppointmentsQueryResponse{}, err
		}
		appointments = append(appointments, summary)
	}
	if err = rows.Err(); err != nil {
		return GetAppointmentsQueryResponse{}, err
	}

	return GetAppointmentsQueryResponse{Total: total, Appointments: appointments}, nil
}
