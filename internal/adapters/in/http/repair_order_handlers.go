package http

import (
	"net/http"
	"strconv"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/domain/model/customer"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"

	"github.com/labstack/echo/v4"
)

// CreateRepairOrder handles POST /api/v1/repair-orders - vehicle intake.
// The response is the persisted order with customer and vehicle resolved,
// so the front desk can show the full ticket without a follow-up read.
func (s *Server) CreateRepairOrder(ctx echo.Context) error {
	var req createRepairOrderRequest
	if err := bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := intakeCommand(orderID, req)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	if _, err := s.createRepairOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, codeRepairOrder, err)
	}

	detailQuery, err := queries.NewGetRepairOrderByIDQuery(orderID)
	if err != nil {
		return writeError(ctx, codeRepairOrder, err)
	}
	detail, err := s.getRepairOrderByIDHandler.Handle(ctx.Request().Context(), detailQuery)
	if err != nil {
		return writeError(ctx, codeRepairOrder, err)
	}

	return ctx.JSON(http.StatusCreated, toRepairOrderDetail(detail))
}

func intakeCommand(orderID kernel.UUID, req createRepairOrderRequest) (commands.CreateRepairOrderCommand, error) {
	if req.IsNewCustomer {
		if req.Customer == nil || req.Vehicle == nil {
			return commands.CreateRepairOrderCommand{}, echo.NewHTTPError(
				http.StatusBadRequest, "customer and vehicle payloads are required for a new customer")
		}

		customerData := commands.CustomerData{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
		}
		if req.Customer.CustomerType == string(customer.TypeBusiness) {
			customerData.Business = &customer.BusinessInfo{
				CompanyName:   req.Customer.CompanyName,
				TaxNumber:     req.Customer.TaxNumber,
				Industry:      req.Customer.Industry,
				ContactPerson: req.Customer.ContactPerson,
			}
		}

		vehicleData := commands.VehicleData{
			Brand:        req.Vehicle.Brand,
			Model:        req.Vehicle.Model,
			Year:         req.Vehicle.Year,
			LicensePlate: req.Vehicle.LicensePlate,
			VIN:          req.Vehicle.VIN,
			Mileage:      req.Vehicle.Mileage,
		}

		return commands.NewCreateRepairOrderCommandForNewCustomer(
			orderID, customerData, vehicleData, req.FaultDesc, req.Remark)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return commands.CreateRepairOrderCommand{}, err
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return commands.CreateRepairOrderCommand{}, err
	}

	return commands.NewCreateRepairOrderCommand(
		orderID, customerID, vehicleID, req.Mileage, req.FaultDesc, req.Remark)
}

// GetRepairOrders handles GET /api/v1/repair-orders - the paginated board.
func (s *Server) GetRepairOrders(ctx echo.Context) error {
	page := queryInt(ctx, "page")
	size := queryInt(ctx, "size")

	var statusFilter *repairorder.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := repairorder.StatusFromString(raw)
		if err != nil {
			return writeBadRequest(ctx, codeRepairOrder, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetRepairOrdersQuery(page, size, statusFilter)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	result, err := s.getRepairOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, codeRepairOrder, err)
	}

	return ctx.JSON(http.StatusOK, pageResponse[repairOrderSummaryResponse]{
		Total: result.Total,
		Items: toRepairOrderSummaries(result.Orders),
	})
}

// GetRepairOrderByID handles GET /api/v1/repair-orders/:id.
func (s *Server) GetRepairOrderByID(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	query, err := queries.NewGetRepairOrderByIDQuery(orderID)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	result, err := s.getRepairOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, codeRepairOrder, err)
	}

	return ctx.JSON(http.StatusOK, toRepairOrderDetail(result))
}

// UpdateInspection handles PUT /api/v1/repair-orders/:id/inspection.
// When the request does not name an inspector, the authenticated principal
// is recorded as one.
func (s *Server) UpdateInspection(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	var req updateInspectionRequest
	if err := bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	inspectorRaw := req.InspectorID
	if inspectorRaw == "" {
		if claims := principal(ctx); claims != nil {
			inspectorRaw = claims.Subject
		}
	}
	inspectorID, err := optionalUUID(inspectorRaw)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	items := make([]commands.InspectionItemData, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.InspectionItemData(item)
	}

	cmd, err := commands.NewUpdateInspectionCommand(orderID, items, req.CustomerItems, inspectorID)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	if err := s.updateInspectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, codeRepairOrder, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateRepairItems handles PUT /api/v1/repair-orders/:id/items - quoting.
func (s *Server) UpdateRepairItems(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	var req updateRepairItemsRequest
	if err := bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	items := make([]commands.RepairItemData, len(req.Items))
	for i, item := range req.Items {
		parts := make([]commands.PartData, len(item.Parts))
		for j, part := range item.Parts {
			partID, idErr := optionalUUID(part.PartID)
			if idErr != nil {
				return writeBadRequest(ctx, codeRepairOrder, idErr)
			}
			parts[j] = commands.PartData{
				PartID:    partID,
				Name:      part.Name,
				Quantity:  part.Quantity,
				UnitPrice: part.UnitPrice,
			}
		}
		items[i] = commands.RepairItemData{
			Name:  item.Name,
			Price: item.Price,
			Parts: parts,
		}
	}

	cmd, err := commands.NewUpdateRepairItemsCommand(orderID, items, req.EstimatedCompletionTime)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	if err := s.updateRepairItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, codeRepairOrder, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateRepairOrderStatus handles PUT /api/v1/repair-orders/:id/status.
func (s *Server) UpdateRepairOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	var req updateRepairOrderStatusRequest
	if err := bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	status, err := repairorder.StatusFromString(req.Status)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	mechanicID, err := optionalUUID(req.MechanicID)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}
	inspectorID, err := optionalUUID(req.InspectorID)
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	cmd, err := commands.NewUpdateRepairOrderStatusCommand(orderID, status, repairorder.StatusUpdate{
		MechanicID:           mechanicID,
		InspectorID:          inspectorID,
		ActualCompletionTime: req.ActualCompletionTime,
		DeliveryTime:         req.DeliveryTime,
		CustomerSignature:    req.CustomerSignature,
	})
	if err != nil {
		return writeBadRequest(ctx, codeRepairOrder, err)
	}

	if err := s.updateRepairOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, codeRepairOrder, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// queryInt parses an integer query parameter, zero when absent or malformed.
// Page and size fall back to their defaults downstream.
func queryInt(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}
