package commands

import (
	"errors"

	"autoshop/internal/core/domain/model/customer"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrCreateRepairOrderCommandIsNotConstructed = errors.New(
		"CreateRepairOrderCommand must be created via a NewCreateRepairOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerPhoneIsRequired = errors.New("customer phone is required")
	ErrVehicleBrandIsRequired  = errors.New("vehicle brand is required")
	ErrVehicleModelIsRequired  = errors.New("vehicle model is required")
	ErrVehiclePlateIsRequired  = errors.New("vehicle license plate is required")
	ErrVehicleVINIsRequired    = errors.New("vehicle VIN is required")
)

// CustomerData carries the customer payload for the new-customer intake path.
// Business is set only for business customers.
type CustomerData struct {
	Name     string
	Phone    string
	Email    string
	Address  string
	Business *customer.BusinessInfo
}

// VehicleData carries the vehicle payload for the new-customer intake path.
type VehicleData struct {
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	VIN          string
	Mileage      int
}

// CreateRepairOrderCommand represents a vehicle intake request. It carries
// either references to an existing customer and vehicle, or embedded payloads
// for registering both on the spot. Whichever path is taken, the command
// results in one new repair order in Pending status.
//
// Example (existing customer):
//
//	cmd, err := NewCreateRepairOrderCommand(
//	    kernel.NewUUID(), customerID, vehicleID, 52000,
//	    "engine rattle on cold start", "")
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
type CreateRepairOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	isNewCustomer bool

	// Existing-customer path.
	customerID kernel.UUID
	vehicleID  kernel.UUID
	mileage    int

	// New-customer path.
	customerData CustomerData
	vehicleData  VehicleData

	faultDesc string
	remark    string

	guard guard.ConstructorGuard
}

// NewCreateRepairOrderCommand creates an intake command for an existing
// customer and vehicle. A positive mileage is recorded against the vehicle;
// zero means "no new reading".
func NewCreateRepairOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	mileage int,
	faultDesc, remark string,
) (CreateRepairOrderCommand, error) {
	cmd := CreateRepairOrderCommand{
		mileage:   mileage,
		faultDesc: faultDesc,
		remark:    remark,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return CreateRepairOrderCommand{}, err
	}

	return cmd, nil
}

// NewCreateRepairOrderCommandForNewCustomer creates an intake command that
// registers a new customer and vehicle before opening the repair order.
func NewCreateRepairOrderCommandForNewCustomer(
	orderID kernel.UUID,
	customerData CustomerData,
	vehicleData VehicleData,
	faultDesc, remark string,
) (CreateRepairOrderCommand, error) {
	cmd := CreateRepairOrderCommand{
		isNewCustomer: true,
		faultDesc:     faultDesc,
		remark:        remark,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerData(customerData),
		cmd.setVehicleData(vehicleData),
	); err != nil {
		return CreateRepairOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c CreateRepairOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRepairOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new repair order will carry.
func (c CreateRepairOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// IsNewCustomer reports whether the command carries embedded customer and
// vehicle payloads instead of references.
func (c CreateRepairOrderCommand) IsNewCustomer() bool {
	return c.isNewCustomer
}

// CustomerID returns the existing customer reference.
func (c CreateRepairOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VehicleID returns the existing vehicle reference.
func (c CreateRepairOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Mileage returns the odometer reading supplied at intake, zero when absent.
func (c CreateRepairOrderCommand) Mileage() int {
	return c.mileage
}

// CustomerData returns the embedded customer payload.
func (c CreateRepairOrderCommand) CustomerData() CustomerData {
	return c.customerData
}

// VehicleData returns the embedded vehicle payload.
func (c CreateRepairOrderCommand) VehicleData() VehicleData {
	return c.vehicleData
}

// FaultDesc returns the customer-reported fault description.
func (c CreateRepairOrderCommand) FaultDesc() string {
	return c.faultDesc
}

// Remark returns the free-text intake remark.
func (c CreateRepairOrderCommand) Remark() string {
	return c.remark
}

func (c *CreateRepairOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateRepairOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateRepairOrderCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateRepairOrderCommand) setCustomerData(data CustomerData) error {
	if data.Name == "" {
		return ErrCustomerNameIsRequired
	}
	if data.Phone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerData = data
	return nil
}

func (c *CreateRepairOrderCommand) setVehicleData(data VehicleData) error {
	if err := errors.Join(
		requireField(data.Brand, ErrVehicleBrandIsRequired),
		requireField(data.Model, ErrVehicleModelIsRequired),
		requireField(data.LicensePlate, ErrVehiclePlateIsRequired),
		requireField(data.VIN, ErrVehicleVINIsRequired),
	); err != nil {
		return err
	}

	c.vehicleData = data
	return nil
}

func requireField(value string, missing error) error {
	if value == "" {
		return missing
	}
	return nil
}
