package vehicle_test

import (
	"testing"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVehicle(t *testing.T, mileage int) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(), kernel.NewUUID(),
		"Toyota", "Camry", 2020, "京B99999", "VIN123", mileage,
	)
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v := newVehicle(t, 50000)
		assert.Equal(t, "Toyota", v.Brand())
		assert.Equal(t, "Camry", v.Model())
		assert.Equal(t, 2020, v.Year())
		assert.Equal(t, "京B99999", v.LicensePlate())
		assert.Equal(t, "VIN123", v.VIN())
		assert.Equal(t, 50000, v.Mileage())
		require.NoError(t, v.Validate())
	})

	t.Run("required_fields", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			make func() error
		}{
			{"brand", vehicle.ErrBrandIsRequired, func() error {
				_, err := vehicle.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "", "Camry", 2020, "P", "V", 0)
				return err
			}},
			{"model", vehicle.ErrModelIsRequired, func() error {
				_, err := vehicle.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "Toyota", "", 2020, "P", "V", 0)
				return err
			}},
			{"plate", vehicle.ErrLicensePlateIsRequired, func() error {
				_, err := vehicle.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "Toyota", "Camry", 2020, "", "V", 0)
				return err
			}},
			{"vin", vehicle.ErrVINIsRequired, func() error {
				_, err := vehicle.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "Toyota", "Camry", 2020, "P", "", 0)
				return err
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				require.ErrorIs(t, tc.make(), tc.err)
			})
		}
	})

	t.Run("rejects_bad_year_and_mileage", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "Toyota", "Camry", 0, "P", "V", 0)
		require.Error(t, err)

		_, err = vehicle.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "Toyota", "Camry", 2020, "P", "V", -1)
		require.Error(t, err)
	})
}

func TestVehicle_UpdateMileage(t *testing.T) {
	t.Run("higher_reading_updates", func(t *testing.T) {
		v := newVehicle(t, 50000)

		changed, err := v.UpdateMileage(52000)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 52000, v.Mileage())
	})

	t.Run("equal_or_lower_reading_is_ignored", func(t *testing.T) {
		v := newVehicle(t, 50000)

		changed, err := v.UpdateMileage(50000)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 50000, v.Mileage())

		changed, err = v.UpdateMileage(49000)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 50000, v.Mileage())
	})

	t.Run("negative_reading_rejected", func(t *testing.T) {
		v := newVehicle(t, 50000)
		_, err := v.UpdateMileage(-1)
		require.Error(t, err)
		assert.Equal(t, 50000, v.Mileage())
	})
}

func TestVehicle_ZeroValueIsInvalid(t *testing.T) {
	var v vehicle.Vehicle
	require.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
}
