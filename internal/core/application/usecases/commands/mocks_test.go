package commands_test

import (
	"context"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/appointment"
	"autoshop/internal/core/domain/model/customer"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"
	"autoshop/internal/core/domain/model/user"
	"autoshop/internal/core/domain/model/vehicle"
	"autoshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}
func (m *MockVehicleRepository) GetByLicensePlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}
func (m *MockVehicleRepository) GetByVIN(ctx context.Context, vin string) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockRepairOrderRepository struct{ mock.Mock }

func (m *MockRepairOrderRepository) Add(ctx context.Context, o *repairorder.RepairOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockRepairOrderRepository) Update(ctx context.Context, o *repairorder.RepairOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockRepairOrderRepository) Get(ctx context.Context, id kernel.UUID) (*repairorder.RepairOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repairorder.RepairOrder), args.Error(1)
}
func (m *MockRepairOrderRepository) GetByOrderNo(
	ctx context.Context, orderNo repairorder.OrderNo,
) (*repairorder.RepairOrder, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repairorder.RepairOrder), args.Error(1)
}

type MockAppointmentRepository struct{ mock.Mock }

func (m *MockAppointmentRepository) Add(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAppointmentRepository) Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}
func (m *MockAppointmentRepository) GetConfirmedBetween(
	ctx context.Context, from, to time.Time,
) ([]*appointment.Appointment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*appointment.Appointment), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// txMock provides the shared transaction lifecycle expectations.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockIntakeUoW struct{ txMock }

func (m *MockIntakeUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockIntakeUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}
func (m *MockIntakeUoW) RepairOrderRepository() ports.RepairOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.RepairOrderRepository)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.IntakeUoW)
}

type MockRepairOrderUoW struct{ txMock }

func (m *MockRepairOrderUoW) RepairOrderRepository() ports.RepairOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.RepairOrderRepository)
}

type MockRepairOrderUoWFactory struct{ mock.Mock }

func (m *MockRepairOrderUoWFactory) Create() commands.RepairOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.RepairOrderUoW)
}

type MockAppointmentUoW struct{ txMock }

func (m *MockAppointmentUoW) AppointmentRepository() ports.AppointmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AppointmentRepository)
}
func (m *MockAppointmentUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockAppointmentUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockAppointmentUoWFactory struct{ mock.Mock }

func (m *MockAppointmentUoWFactory) Create() commands.AppointmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AppointmentUoW)
}

type MockUserUoW struct{ txMock }

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}
