package http

import (
	"net/http"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/domain/model/appointment"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateAppointment handles POST /api/v1/appointments.
func (s *Server) CreateAppointment(ctx echo.Context) error {
	var req createAppointmentRequest
	if err := bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, codeAppointment, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeBadRequest(ctx, codeAppointment, err)
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return writeBadRequest(ctx, codeAppointment, err)
	}

	appointmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAppointmentCommand(
		appointmentID, customerID, vehicleID,
		req.AppointmentDate, appointment.ServiceType(req.ServiceType),
		req.Description, req.Remark)
	if err != nil {
		return writeBadRequest(ctx, codeAppointment, err)
	}

	if err := s.createAppointmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, codeAppointment, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": appointmentID.String()})
}

// GetAppointments handles GET /api/v1/appointments.
func (s *Server) GetAppointments(ctx echo.Context) error {
	query, err := queries.NewGetAppointmentsQuery(queryInt(ctx, "page"), queryInt(ctx, "size"))
	if err != nil {
		return writeBadRequest(ctx, codeAppointment, err)
	}

	result, err := s.getAppointmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, codeAppointment, err)
	}

	return ctx.JSON(http.StatusOK, pageResponse[appointmentSummaryResponse]{
		Total: result.Total,
		Items: toAppointmentSummaries(result.Appointments),
	})
}

// UpdateAppointmentStatus handles PUT /api/v1/appointments/:id/status.
func (s *Server) UpdateAppointmentStatus(ctx echo.Context) error {
	appointmentID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, codeAppointment, err)
	}

	var req updateAppointmentStatusRequest
	if err := bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, codeAppointment, err)
	}

	cmd, err := commands.NewUpdateAppointmentStatusCommand(
		appointmentID, appointment.Status(req.Status), req.CancelReason)
	if err != nil {
		return writeBadRequest(ctx, codeAppointment, err)
	}

	if err := s.updateAppointmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, codeAppointment, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
