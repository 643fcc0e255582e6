package http

import (
	"fmt"
	"time"

	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/domain/model/repairorder"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// exportPageSize is the chunk size used when draining a listing query
	// into a spreadsheet.
	exportPageSize = 100
)

// ExportCustomers handles GET /api/v1/customers/export.
func (s *Server) ExportCustomers(ctx echo.Context) error {
	f, sheet := newExportFile("Customers",
		[]string{"Name", "Type", "Company", "Phone", "Email", "Address", "Vehicles"},
		[]float64{20, 10, 24, 16, 24, 32, 10})
	defer f.Close()

	row := 2
	for page := 1; ; page++ {
		query, err := queries.NewGetCustomersQuery(page, exportPageSize, ctx.QueryParam("keyword"))
		if err != nil {
			return writeBadRequest(ctx, codeCustomer, err)
		}
		result, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return writeError(ctx, codeCustomer, err)
		}
		for _, c := range result.Customers {
			writeExportRow(f, sheet, row, []any{
				c.Name, c.CustomerType, c.CompanyName, c.Phone, c.Email, c.Address, c.VehicleCount,
			})
			row++
		}
		if len(result.Customers) < exportPageSize {
			break
		}
	}

	return sendExportFile(ctx, f, "customers")
}

// ExportVehicles handles GET /api/v1/vehicles/export.
func (s *Server) ExportVehicles(ctx echo.Context) error {
	f, sheet := newExportFile("Vehicles",
		[]string{"Brand", "Model", "Year", "License Plate", "VIN", "Mileage", "Owner"},
		[]float64{14, 14, 8, 16, 22, 10, 20})
	defer f.Close()

	row := 2
	for page := 1; ; page++ {
		query, err := queries.NewGetVehiclesQuery(page, exportPageSize, ctx.QueryParam("keyword"))
		if err != nil {
			return writeBadRequest(ctx, codeVehicle, err)
		}
		result, err := s.getVehiclesHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return writeError(ctx, codeVehicle, err)
		}
		for _, v := range result.Vehicles {
			writeExportRow(f, sheet, row, []any{
				v.Brand, v.Model, v.Year, v.LicensePlate, v.VIN, v.Mileage, v.CustomerName,
			})
			row++
		}
		if len(result.Vehicles) < exportPageSize {
			break
		}
	}

	return sendExportFile(ctx, f, "vehicles")
}

// ExportRepairOrders handles GET /api/v1/repair-orders/export.
func (s *Server) ExportRepairOrders(ctx echo.Context) error {
	var statusFilter *repairorder.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := repairorder.StatusFromString(raw)
		if err != nil {
			return writeBadRequest(ctx, codeRepairOrder, err)
		}
		statusFilter = &status
	}

	f, sheet := newExportFile("Repair Orders",
		[]string{"Order No", "Status", "Customer", "Phone", "Vehicle", "License Plate", "Fault", "Total", "Created"},
		[]float64{18, 12, 20, 16, 22, 16, 32, 12, 20})
	defer f.Close()

	row := 2
	for page := 1; ; page++ {
		query, err := queries.NewGetRepairOrdersQuery(page, exportPageSize, statusFilter)
		if err != nil {
			return writeBadRequest(ctx, codeRepairOrder, err)
		}
		result, err := s.getRepairOrdersHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return writeError(ctx, codeRepairOrder, err)
		}
		for _, o := range result.Orders {
			writeExportRow(f, sheet, row, []any{
				o.OrderNo, o.Status,
				o.CustomerName, o.CustomerPhone,
				o.VehicleBrand + " " + o.VehicleModel, o.LicensePlate,
				o.FaultDesc, o.TotalAmount.StringFixed(2),
				o.CreatedAt.Format(time.RFC3339),
			})
			row++
		}
		if len(result.Orders) < exportPageSize {
			break
		}
	}

	return sendExportFile(ctx, f, "repair-orders")
}

// newExportFile creates a workbook with a named sheet, a bold header row, and
// preset column widths.
func newExportFile(sheet string, headers []string, widths []float64) (*excelize.File, string) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	return f, sheet
}

func writeExportRow(f *excelize.File, sheet string, row int, values []any) {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetSheetRow(sheet, cell, &values)
}

func sendExportFile(ctx echo.Context, f *excelize.File, name string) error {
	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().UTC().Format("20060102"))

	header := ctx.Response().Header()
	header.Set(echo.HeaderContentType, xlsxContentType)
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return f.Write(ctx.Response())
}
