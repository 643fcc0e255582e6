package commands

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/customer"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"
	"autoshop/internal/core/domain/model/vehicle"
	"autoshop/internal/pkg/errs"
)

var (
	// ErrLicensePlateAlreadyRegistered is returned when the new-customer path
	// finds the license plate already in the vehicle directory.
	ErrLicensePlateAlreadyRegistered = errors.New("license plate is already registered")
	// ErrVINAlreadyRegistered is returned when the new-customer path finds
	// the VIN already in the vehicle directory.
	ErrVINAlreadyRegistered = errors.New("vin is already registered")
)

// CreateRepairOrderCommandHandler handles vehicle intake. It resolves or
// registers the customer and vehicle, generates an order number, and opens a
// repair order in Pending status. All writes happen in a single transaction:
// either the customer, vehicle, and order all land, or none do.
type CreateRepairOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewCreateRepairOrderCommandHandler creates a handler for vehicle intake.
// Requires an IntakeUoWFactory for transactional persistence across the
// customer, vehicle, and repair order repositories.
func NewCreateRepairOrderCommandHandler(uowFactory IntakeUoWFactory) CreateRepairOrderCommandHandler {
	return CreateRepairOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command and returns the generated order number.
//
// New-customer path: pre-checks the license plate and VIN for duplicates
// (distinct errors, no writes on failure), then registers the customer and
// vehicle. Existing path: resolves both aggregates and records the supplied
// odometer reading, which only sticks when strictly greater than the stored
// one. Either way the order number is generated here; uniqueness is
// ultimately enforced by the database when the order is added.
func (h *CreateRepairOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRepairOrderCommand,
) (repairorder.OrderNo, error) {
	if err := cmd.Validate(); err != nil {
		return repairorder.OrderNo{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return repairorder.OrderNo{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		cust *customer.Customer
		veh  *vehicle.Vehicle
		err  error
	)
	if cmd.IsNewCustomer() {
		cust, veh, err = h.registerCustomerAndVehicle(ctx, uow, cmd)
	} else {
		cust, veh, err = h.resolveCustomerAndVehicle(ctx, uow, cmd)
	}
	if err != nil {
		return repairorder.OrderNo{}, err
	}

	orderNo, err := repairorder.GenerateOrderNo(repairorder.DefaultOrderNoPrefix)
	if err != nil {
		return repairorder.OrderNo{}, err
	}

	order, err := repairorder.NewRepairOrder(
		cmd.OrderID(), orderNo, cust.ID(), veh.ID(), veh.Mileage(),
		cmd.FaultDesc(), cmd.Remark(),
	)
	if err != nil {
		return repairorder.OrderNo{}, err
	}

	if err = uow.RepairOrderRepository().Add(ctx, order); err != nil {
		return repairorder.OrderNo{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return repairorder.OrderNo{}, err
	}

	return orderNo, nil
}

func (h *CreateRepairOrderCommandHandler) registerCustomerAndVehicle(
	ctx context.Context,
	uow IntakeUoW,
	cmd CreateRepairOrderCommand,
) (*customer.Customer, *vehicle.Vehicle, error) {
	vehicleRepo := uow.VehicleRepository()
	vehicleData := cmd.VehicleData()

	if err := ensureVehicleAbsent(
		vehicleRepo.GetByLicensePlate(ctx, vehicleData.LicensePlate),
	); err != nil {
		if errors.Is(err, errTakenSentinel) {
			return nil, nil, ErrLicensePlateAlreadyRegistered
		}
		return nil, nil, err
	}
	if err := ensureVehicleAbsent(
		vehicleRepo.GetByVIN(ctx, vehicleData.VIN),
	); err != nil {
		if errors.Is(err, errTakenSentinel) {
			return nil, nil, ErrVINAlreadyRegistered
		}
		return nil, nil, err
	}

	customerData := cmd.CustomerData()
	var (
		cust *customer.Customer
		err  error
	)
	if customerData.Business != nil {
		cust, err = customer.NewBusinessCustomer(
			kernel.NewUUID(), customerData.Name, customerData.Phone,
			customerData.Email, customerData.Address, *customerData.Business,
		)
	} else {
		cust, err = customer.NewCustomer(
			kernel.NewUUID(), customerData.Name, customerData.Phone,
			customerData.Email, customerData.Address,
		)
	}
	if err != nil {
		return nil, nil, err
	}

	veh, err := vehicle.NewVehicle(
		kernel.NewUUID(), cust.ID(),
		vehicleData.Brand, vehicleData.Model, vehicleData.Year,
		vehicleData.LicensePlate, vehicleData.VIN, vehicleData.Mileage,
	)
	if err != nil {
		return nil, nil, err
	}

	if err = cust.AddVehicle(veh.ID()); err != nil {
		return nil, nil, err
	}

	if err = uow.CustomerRepository().Add(ctx, cust); err != nil {
		return nil, nil, err
	}
	if err = vehicleRepo.Add(ctx, veh); err != nil {
		return nil, nil, err
	}

	return cust, veh, nil
}

func (h *CreateRepairOrderCommandHandler) resolveCustomerAndVehicle(
	ctx context.Context,
	uow IntakeUoW,
	cmd CreateRepairOrderCommand,
) (*customer.Customer, *vehicle.Vehicle, error) {
	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, nil, err
	}

	vehicleRepo := uow.VehicleRepository()
	veh, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, nil, err
	}

	if cmd.Mileage() > 0 {
		changed, err := veh.UpdateMileage(cmd.Mileage())
		if err != nil {
			return nil, nil, err
		}
		if changed {
			if err = vehicleRepo.Update(ctx, veh); err != nil {
				return nil, nil, err
			}
		}
	}

	return cust, veh, nil
}

// errTakenSentinel marks a successful lookup during a duplicate pre-check.
var errTakenSentinel = errors.New("value is taken")

// ensureVehicleAbsent translates the result of a duplicate pre-check lookup:
// a found vehicle becomes errTakenSentinel, a not-found error means the value
// is free, and any other error is passed through.
func ensureVehicleAbsent(veh *vehicle.Vehicle, err error) error {
	if err == nil && veh != nil {
		return errTakenSentinel
	}

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}
