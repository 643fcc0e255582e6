package http

import (
	"net/http"

	"autoshop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query, err := queries.NewGetCustomersQuery(
		queryInt(ctx, "page"), queryInt(ctx, "size"), ctx.QueryParam("keyword"))
	if err != nil {
		return writeBadRequest(ctx, codeCustomer, err)
	}

	result, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, codeCustomer, err)
	}

	return ctx.JSON(http.StatusOK, pageResponse[customerSummaryResponse]{
		Total: result.Total,
		Items: toCustomerSummaries(result.Customers),
	})
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	query, err := queries.NewGetVehiclesQuery(
		queryInt(ctx, "page"), queryInt(ctx, "size"), ctx.QueryParam("keyword"))
	if err != nil {
		return writeBadRequest(ctx, codeVehicle, err)
	}

	result, err := s.getVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, codeVehicle, err)
	}

	return ctx.JSON(http.StatusOK, pageResponse[vehicleSummaryResponse]{
		Total: result.Total,
		Items: toVehicleSummaries(result.Vehicles),
	})
}

// CheckVehicleExists handles GET /api/v1/vehicles/check. The front desk uses
// it during intake to pull up a returning vehicle by plate or VIN.
func (s *Server) CheckVehicleExists(ctx echo.Context) error {
	query, err := queries.NewCheckVehicleExistsQuery(
		ctx.QueryParam("licensePlate"), ctx.QueryParam("vin"))
	if err != nil {
		return writeBadRequest(ctx, codeVehicle, err)
	}

	result, err := s.checkVehicleExistsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, codeVehicle, err)
	}

	return ctx.JSON(http.StatusOK, toVehicleExists(result))
}
