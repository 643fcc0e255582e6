package queries_test

import (
	"testing"

	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckVehicleExistsQuery(t *testing.T) {
	_, err := queries.NewCheckVehicleExistsQuery("", "")
	require.ErrorIs(t, err, queries.ErrPlateOrVINIsRequired)

	query, err := queries.NewCheckVehicleExistsQuery("京B99999", "")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "京B99999", query.LicensePlate())

	query, err = queries.NewCheckVehicleExistsQuery("", "VIN123")
	require.NoError(t, err)
	assert.Equal(t, "VIN123", query.VIN())
}

func TestNewGetRepairOrdersQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		query, err := queries.NewGetRepairOrdersQuery(0, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, query.Page())
		assert.Equal(t, 20, query.Size())
		assert.Equal(t, 0, query.Offset())
	})

	t.Run("offset", func(t *testing.T) {
		query, err := queries.NewGetRepairOrdersQuery(3, 10, nil)
		require.NoError(t, err)
		assert.Equal(t, 20, query.Offset())
	})

	t.Run("size_cap", func(t *testing.T) {
		_, err := queries.NewGetRepairOrdersQuery(1, 500, nil)
		require.Error(t, err)
	})

	t.Run("status_filter", func(t *testing.T) {
		status := repairorder.Repairing
		query, err := queries.NewGetRepairOrdersQuery(1, 10, &status)
		require.NoError(t, err)
		require.NotNil(t, query.Status())
		assert.Equal(t, repairorder.Repairing, *query.Status())

		bad := repairorder.Status(99)
		_, err = queries.NewGetRepairOrdersQuery(1, 10, &bad)
		require.Error(t, err)
	})
}

func TestNewGetRepairOrderByIDQuery(t *testing.T) {
	_, err := queries.NewGetRepairOrderByIDQuery(kernel.UUID{})
	require.Error(t, err)

	query, err := queries.NewGetRepairOrderByIDQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewAuthenticateUserQuery(t *testing.T) {
	_, err := queries.NewAuthenticateUserQuery("", "pw")
	require.ErrorIs(t, err, queries.ErrLoginEmailIsRequired)

	_, err = queries.NewAuthenticateUserQuery("a@b.c", "")
	require.ErrorIs(t, err, queries.ErrLoginPasswordIsRequired)

	query, err := queries.NewAuthenticateUserQuery("a@b.c", "pw")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestQueries_ZeroValueIsInvalid(t *testing.T) {
	require.ErrorIs(t,
		queries.GetRepairOrdersQuery{}.Validate(),
		queries.ErrGetRepairOrdersQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetCustomersQuery{}.Validate(),
		queries.ErrGetCustomersQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetVehiclesQuery{}.Validate(),
		queries.ErrGetVehiclesQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetAppointmentsQuery{}.Validate(),
		queries.ErrGetAppointmentsQueryIsNotConstructed)
}
