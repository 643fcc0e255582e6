package commands_test

import (
	"testing"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRepairOrderCommand(t *testing.T) {
	t.Run("existing_customer_path", func(t *testing.T) {
		orderID, customerID, vehicleID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewCreateRepairOrderCommand(
			orderID, customerID, vehicleID, 52000, "engine rattle", "waiting on site",
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())

		assert.False(t, cmd.IsNewCustomer())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.True(t, cmd.VehicleID().IsEqual(vehicleID))
		assert.Equal(t, 52000, cmd.Mileage())
		assert.Equal(t, "engine rattle", cmd.FaultDesc())
	})

	t.Run("rejects_invalid_ids", func(t *testing.T) {
		_, err := commands.NewCreateRepairOrderCommand(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), 0, "", "",
		)
		require.Error(t, err)

		_, err = commands.NewCreateRepairOrderCommand(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), 0, "", "",
		)
		require.Error(t, err)
	})
}

func TestNewCreateRepairOrderCommandForNewCustomer(t *testing.T) {
	customerData := commands.CustomerData{Name: "Wang Lei", Phone: "13800138000"}
	vehicleData := commands.VehicleData{
		Brand: "Toyota", Model: "Camry", Year: 2020,
		LicensePlate: "京B99999", VIN: "VIN123", Mileage: 50000,
	}

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateRepairOrderCommandForNewCustomer(
			kernel.NewUUID(), customerData, vehicleData, "brakes squeal", "",
		)
		require.NoError(t, err)
		assert.True(t, cmd.IsNewCustomer())
		assert.Equal(t, "Wang Lei", cmd.CustomerData().Name)
		assert.Equal(t, "京B99999", cmd.VehicleData().LicensePlate)
	})

	t.Run("missing_fields", func(t *testing.T) {
		cases := []struct {
			name     string
			customer commands.CustomerData
			vehicle  commands.VehicleData
			want     error
		}{
			{"customer_name", commands.CustomerData{Phone: "138"}, vehicleData, commands.ErrCustomerNameIsRequired},
			{"customer_phone", commands.CustomerData{Name: "Wang"}, vehicleData, commands.ErrCustomerPhoneIsRequired},
			{"vehicle_brand", customerData, commands.VehicleData{Model: "C", LicensePlate: "P", VIN: "V"}, commands.ErrVehicleBrandIsRequired},
			{"vehicle_plate", customerData, commands.VehicleData{Brand: "T", Model: "C", VIN: "V"}, commands.ErrVehiclePlateIsRequired},
			{"vehicle_vin", customerData, commands.VehicleData{Brand: "T", Model: "C", LicensePlate: "P"}, commands.ErrVehicleVINIsRequired},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewCreateRepairOrderCommandForNewCustomer(
					kernel.NewUUID(), tc.customer, tc.vehicle, "", "",
				)
				require.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestCreateRepairOrderCommand_ZeroValueIsInvalid(t *testing.T) {
	var cmd commands.CreateRepairOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateRepairOrderCommandIsNotConstructed)
}
