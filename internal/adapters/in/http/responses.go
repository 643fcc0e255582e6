package http

import (
	"encoding/json"
	"time"

	"autoshop/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Response DTOs. Query read models are mapped here so the wire format stays
// stable when the read models evolve.

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

type repairOrderSummaryResponse struct {
	ID            string          `json:"id"`
	OrderNo       string          `json:"orderNo"`
	Status        string          `json:"status"`
	FaultDesc     string          `json:"faultDesc"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	VehicleBrand  string          `json:"vehicleBrand"`
	VehicleModel  string          `json:"vehicleModel"`
	LicensePlate  string          `json:"licensePlate"`
}

type pageResponse[T any] struct {
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

func toRepairOrderSummaries(rows []queries.RepairOrderSummary) []repairOrderSummaryResponse {
	out := make([]repairOrderSummaryResponse, len(rows))
	for i, row := range rows {
		out[i] = repairOrderSummaryResponse{
			ID:            row.ID.String(),
			OrderNo:       row.OrderNo,
			Status:        row.Status,
			FaultDesc:     row.FaultDesc,
			TotalAmount:   row.TotalAmount,
			CreatedAt:     row.CreatedAt,
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			VehicleBrand:  row.VehicleBrand,
			VehicleModel:  row.VehicleModel,
			LicensePlate:  row.LicensePlate,
		}
	}
	return out
}

type inspectionItemResponse struct {
	Name   string `json:"name"`
	Result string `json:"result"`
	Remark string `json:"remark,omitempty"`
}

type partResponse struct {
	PartID    string          `json:"partId,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type repairItemResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Parts []partResponse  `json:"parts"`
}

type repairOrderDetailResponse struct {
	ID        string `json:"id"`
	OrderNo   string `json:"orderNo"`
	Status    string `json:"status"`
	Mileage   int    `json:"mileage"`
	FaultDesc string `json:"faultDesc"`
	Remark    string `json:"remark,omitempty"`

	InspectionItems []inspectionItemResponse `json:"inspectionItems"`
	CustomerItems   json.RawMessage          `json:"customerItems,omitempty"`
	RepairItems     []repairItemResponse     `json:"repairItems"`

	PartsAmount decimal.Decimal `json:"partsAmount"`
	LaborAmount decimal.Decimal `json:"laborAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`

	MechanicID              string     `json:"mechanicId,omitempty"`
	InspectorID             string     `json:"inspectorId,omitempty"`
	EstimatedCompletionTime *time.Time `json:"estimatedCompletionTime,omitempty"`
	ActualCompletionTime    *time.Time `json:"actualCompletionTime,omitempty"`
	DeliveryTime            *time.Time `json:"deliveryTime,omitempty"`
	CustomerSignature       string     `json:"customerSignature,omitempty"`
	Version                 int64      `json:"version"`
	CreatedAt               time.Time  `json:"createdAt"`

	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	VehicleID    string `json:"vehicleId"`
	VehicleBrand string `json:"vehicleBrand"`
	VehicleModel string `json:"vehicleModel"`
	LicensePlate string `json:"licensePlate"`
	VIN          string `json:"vin"`
}

func toRepairOrderDetail(detail queries.GetRepairOrderByIDQueryResponse) repairOrderDetailResponse {
	resp := repairOrderDetailResponse{
		ID:                      detail.ID.String(),
		OrderNo:                 detail.OrderNo,
		Status:                  detail.Status,
		Mileage:                 detail.Mileage,
		FaultDesc:               detail.FaultDesc,
		Remark:                  detail.Remark,
		CustomerItems:           detail.CustomerItems,
		PartsAmount:             detail.PartsAmount,
		LaborAmount:             detail.LaborAmount,
		TotalAmount:             detail.TotalAmount,
		EstimatedCompletionTime: detail.EstimatedCompletionTime,
		ActualCompletionTime:    detail.ActualCompletionTime,
		DeliveryTime:            detail.DeliveryTime,
		CustomerSignature:       detail.CustomerSignature,
		Version:                 detail.Version,
		CreatedAt:               detail.CreatedAt,
		CustomerID:              detail.CustomerID.String(),
		CustomerName:            detail.CustomerName,
		CustomerPhone:           detail.CustomerPhone,
		VehicleID:               detail.VehicleID.String(),
		VehicleBrand:            detail.VehicleBrand,
		VehicleModel:            detail.VehicleModel,
		LicensePlate:            detail.LicensePlate,
		VIN:                     detail.VIN,
	}

	if detail.MechanicID != nil {
		resp.MechanicID = detail.MechanicID.String()
	}
	if detail.InspectorID != nil {
		resp.InspectorID = detail.InspectorID.String()
	}

	resp.InspectionItems = make([]inspectionItemResponse, len(detail.InspectionItems))
	for i, item := range detail.InspectionItems {
		resp.InspectionItems[i] = inspectionItemResponse(item)
	}

	resp.RepairItems = make([]repairItemResponse, len(detail.RepairItems))
	for i, item := range detail.RepairItems {
		parts := make([]partResponse, len(item.Parts))
		for j, part := range item.Parts {
			parts[j] = partResponse{
				Name:      part.Name,
				Quantity:  part.Quantity,
				UnitPrice: part.UnitPrice,
				Subtotal:  part.Subtotal,
			}
			if part.PartID != nil {
				parts[j].PartID = part.PartID.String()
			}
		}
		resp.RepairItems[i] = repairItemResponse{
			Name:  item.Name,
			Price: item.Price,
			Parts: parts,
		}
	}

	return resp
}

type vehicleExistsResponse struct {
	Exists bool `json:"exists"`

	VehicleID    string `json:"vehicleId,omitempty"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty"`
	LicensePlate string `json:"licensePlate,omitempty"`
	VIN          string `json:"vin,omitempty"`
	Mileage      int    `json:"mileage,omitempty"`

	CustomerID    string `json:"customerId,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}

func toVehicleExists(result queries.CheckVehicleExistsQueryResponse) vehicleExistsResponse {
	if !result.Exists {
		return vehicleExistsResponse{}
	}
	return vehicleExistsResponse{
		Exists:        true,
		VehicleID:     result.VehicleID.String(),
		Brand:         result.Brand,
		Model:         result.Model,
		Year:          result.Year,
		LicensePlate:  result.LicensePlate,
		VIN:           result.VIN,
		Mileage:       result.Mileage,
		CustomerID:    result.CustomerID.String(),
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
	}
}

type customerSummaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CustomerType string `json:"customerType"`
	CompanyName  string `json:"companyName,omitempty"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	VehicleCount int    `json:"vehicleCount"`
}

func toCustomerSummaries(rows []queries.CustomerSummary) []customerSummaryResponse {
	out := make([]customerSummaryResponse, len(rows))
	for i, row := range rows {
		out[i] = customerSummaryResponse{
			ID:           row.ID.String(),
			Name:         row.Name,
			CustomerType: row.CustomerType,
			CompanyName:  row.CompanyName,
			Phone:        row.Phone,
			Email:        row.Email,
			Address:      row.Address,
			VehicleCount: row.VehicleCount,
		}
	}
	return out
}

type vehicleSummaryResponse struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
	VIN          string `json:"vin"`
	Mileage      int    `json:"mileage"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
}

func toVehicleSummaries(rows []queries.VehicleSummary) []vehicleSummaryResponse {
	out := make([]vehicleSummaryResponse, len(rows))
	for i, row := range rows {
		out[i] = vehicleSummaryResponse{
			ID:           row.ID.String(),
			Brand:        row.Brand,
			Model:        row.Model,
			Year:         row.Year,
			LicensePlate: row.LicensePlate,
			VIN:          row.VIN,
			Mileage:      row.Mileage,
			CustomerID:   row.CustomerID.String(),
			CustomerName: row.CustomerName,
		}
	}
	return out
}

type appointmentSummaryResponse struct {
	ID              string    `json:"id"`
	AppointmentDate time.Time `json:"appointmentDate"`
	ServiceType     string    `json:"serviceType"`
	Status          string    `json:"status"`
	Description     string    `json:"description,omitempty"`
	CancelReason    string    `json:"cancelReason,omitempty"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	VehicleBrand    string    `json:"vehicleBrand"`
	VehicleModel    string    `json:"vehicleModel"`
	LicensePlate    string    `json:"licensePlate"`
}

func toAppointmentSummaries(rows []queries.AppointmentSummary) []appointmentSummaryResponse {
	out := make([]appointmentSummaryResponse, len(rows))
	for i, row := range rows {
		out[i] = appointmentSummaryResponse{
			ID:              row.ID.String(),
			AppointmentDate: row.AppointmentDate,
			ServiceType:     row.ServiceType,
			Status:          row.Status,
			Description:     row.Description,
			CancelReason:    row.CancelReason,
			CustomerName:    row.CustomerName,
			CustomerPhone:   row.CustomerPhone,
			VehicleBrand:    row.VehicleBrand,
			VehicleModel:    row.VehicleModel,
			LicensePlate:    row.LicensePlate,
		}
	}
	return out
}
