package http

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs. Structural requirements live in validator tags; business
// rules live in the command constructors and the domain.

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin staff user"`
}

type customerPayload struct {
	Name         string `json:"name"  validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Address      string `json:"address"`
	CustomerType string `json:"customerType" validate:"omitempty,oneof=personal business"`

	CompanyName   string `json:"companyName"`
	TaxNumber     string `json:"taxNumber"`
	Industry      string `json:"industry"`
	ContactPerson string `json:"contactPerson"`
}

type vehiclePayload struct {
	Brand        string `json:"brand"        validate:"required"`
	Model        string `json:"model"        validate:"required"`
	Year         int    `json:"year"         validate:"required"`
	LicensePlate string `json:"licensePlate" validate:"required"`
	VIN          string `json:"vin"          validate:"required"`
	Mileage      int    `json:"mileage"      validate:"gte=0"`
}

type createRepairOrderRequest struct {
	IsNewCustomer bool `json:"isNewCustomer"`

	CustomerID string `json:"customerId" validate:"required_without=Customer"`
	VehicleID  string `json:"vehicleId"  validate:"required_without=Vehicle"`
	Mileage    int    `json:"mileage"    validate:"gte=0"`

	Customer *customerPayload `json:"customer" validate:"omitempty"`
	Vehicle  *vehiclePayload  `json:"vehicle"  validate:"omitempty"`

	FaultDesc string `json:"faultDesc"`
	Remark    string `json:"remark"`
}

type inspectionItemPayload struct {
	Name   string `json:"name"   validate:"required"`
	Result string `json:"result" validate:"required"`
	Remark string `json:"remark"`
}

type updateInspectionRequest struct {
	Items         []inspectionItemPayload `json:"items" validate:"required,min=1,dive"`
	CustomerItems json.RawMessage         `json:"customerItems"`
	InspectorID   string                  `json:"inspectorId"`
}

type partPayload struct {
	PartID    string          `json:"partId"`
	Name      string          `json:"name"      validate:"required"`
	Quantity  int             `json:"quantity"  validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type repairItemPayload struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
	Parts []partPayload   `json:"parts" validate:"omitempty,dive"`
}

type updateRepairItemsRequest struct {
	Items                   []repairItemPayload `json:"items" validate:"required,min=1,dive"`
	EstimatedCompletionTime *time.Time          `json:"estimatedCompletionTime"`
}

type updateRepairOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`

	MechanicID           string     `json:"mechanicId"`
	InspectorID          string     `json:"inspectorId"`
	ActualCompletionTime *time.Time `json:"actualCompletionTime"`
	DeliveryTime         *time.Time `json:"deliveryTime"`
	CustomerSignature    *string    `json:"customerSignature"`
}

type createAppointmentRequest struct {
	CustomerID      string    `json:"customerId"      validate:"required"`
	VehicleID       string    `json:"vehicleId"       validate:"required"`
	AppointmentDate time.Time `json:"appointmentDate" validate:"required"`
	ServiceType     string    `json:"serviceType"     validate:"required,oneof=maintenance repair inspection other"`
	Description     string    `json:"description"`
	Remark          string    `json:"remark"`
}

type updateAppointmentStatusRequest struct {
	Status       string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
	CancelReason string `json:"cancelReason"`
}
