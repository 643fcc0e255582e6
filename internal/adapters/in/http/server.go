// Package http is the inbound HTTP adapter: an echo server exposing the
// shop's use cases under /api/v1, guarded by bearer-token middleware except
// for login, registration, and the health probe.
package http

import (
	"net/http"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRepairOrderHandler       commands.CreateRepairOrderCommandHandler
	updateInspectionHandler        commands.UpdateInspectionCommandHandler
	updateRepairItemsHandler       commands.UpdateRepairItemsCommandHandler
	updateRepairOrderStatusHandler commands.UpdateRepairOrderStatusCommandHandler
	createAppointmentHandler       commands.CreateAppointmentCommandHandler
	updateAppointmentStatusHandler commands.UpdateAppointmentStatusCommandHandler
	registerUserHandler            commands.RegisterUserCommandHandler

	// Query handlers
	authenticateUserHandler   queries.AuthenticateUserQueryHandler
	checkVehicleExistsHandler queries.CheckVehicleExistsQueryHandler
	getRepairOrdersHandler    queries.GetRepairOrdersQueryHandler
	getRepairOrderByIDHandler queries.GetRepairOrderByIDQueryHandler
	getCustomersHandler       queries.GetCustomersQueryHandler
	getVehiclesHandler        queries.GetVehiclesQueryHandler
	getAppointmentsHandler    queries.GetAppointmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createRepairOrderHandler commands.CreateRepairOrderCommandHandler,
	updateInspectionHandler commands.UpdateInspectionCommandHandler,
	updateRepairItemsHandler commands.UpdateRepairItemsCommandHandler,
	updateRepairOrderStatusHandler commands.UpdateRepairOrderStatusCommandHandler,
	createAppointmentHandler commands.CreateAppointmentCommandHandler,
	updateAppointmentStatusHandler commands.UpdateAppointmentStatusCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	checkVehicleExistsHandler queries.CheckVehicleExistsQueryHandler,
	getRepairOrdersHandler queries.GetRepairOrdersQueryHandler,
	getRepairOrderByIDHandler queries.GetRepairOrderByIDQueryHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
	getVehiclesHandler queries.GetVehiclesQueryHandler,
	getAppointmentsHandler queries.GetAppointmentsQueryHandler,
) *Server {
	return &Server{
		createRepairOrderHandler:       createRepairOrderHandler,
		updateInspectionHandler:        updateInspectionHandler,
		updateRepairItemsHandler:       updateRepairItemsHandler,
		updateRepairOrderStatusHandler: updateRepairOrderStatusHandler,
		createAppointmentHandler:       createAppointmentHandler,
		updateAppointmentStatusHandler: updateAppointmentStatusHandler,
		registerUserHandler:            registerUserHandler,
		authenticateUserHandler:        authenticateUserHandler,
		checkVehicleExistsHandler:      checkVehicleExistsHandler,
		getRepairOrdersHandler:         getRepairOrdersHandler,
		getRepairOrderByIDHandler:      getRepairOrderByIDHandler,
		getCustomersHandler:            getCustomersHandler,
		getVehiclesHandler:             getVehiclesHandler,
		getAppointmentsHandler:         getAppointmentsHandler,
	}
}

// RegisterRoutes wires the server's handlers onto the echo instance. Every
// route except login, register, and health sits behind authMiddleware.
func (s *Server) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", s.Login)
	v1.POST("/auth/register", s.Register)

	api := v1.Group("", authMiddleware)

	api.POST("/repair-orders", s.CreateRepairOrder)
	api.GET("/repair-orders", s.GetRepairOrders)
	api.GET("/repair-orders/export", s.ExportRepairOrders)
	api.GET("/repair-orders/:id", s.GetRepairOrderByID)
	api.PUT("/repair-orders/:id/inspection", s.UpdateInspection)
	api.PUT("/repair-orders/:id/items", s.UpdateRepairItems)
	api.PUT("/repair-orders/:id/status", s.UpdateRepairOrderStatus)

	api.GET("/customers", s.GetCustomers)
	api.GET("/customers/export", s.ExportCustomers)

	api.GET("/vehicles", s.GetVehicles)
	api.GET("/vehicles/check", s.CheckVehicleExists)
	api.GET("/vehicles/export", s.ExportVehicles)

	api.POST("/appointments", s.CreateAppointment)
	api.GET("/appointments", s.GetAppointments)
	api.PUT("/appointments/:id/status", s.UpdateAppointmentStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// optionalUUID parses an optional identifier field, empty meaning absent.
func optionalUUID(s string) (*kernel.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
