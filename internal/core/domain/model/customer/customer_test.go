package customer_test

import (
	"testing"

	"autoshop/internal/core/domain/model/customer"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates_personal_customer", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Wang Lei", "13800138000", "wang@example.com", "")
		require.NoError(t, err)

		assert.Equal(t, "Wang Lei", c.Name())
		assert.Equal(t, customer.TypePersonal, c.CustomerType())
		assert.Equal(t, "13800138000", c.Phone())
		assert.Empty(t, c.Vehicles())
		require.NoError(t, c.Validate())
	})

	t.Run("requires_name_and_phone", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "13800138000", "", "")
		require.ErrorIs(t, err, customer.ErrNameIsRequired)

		_, err = customer.NewCustomer(kernel.NewUUID(), "Wang Lei", "", "", "")
		require.ErrorIs(t, err, customer.ErrPhoneIsRequired)
	})

	t.Run("requires_valid_id", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, "Wang Lei", "13800138000", "", "")
		require.Error(t, err)
	})
}

func TestNewBusinessCustomer(t *testing.T) {
	t.Run("requires_company_name", func(t *testing.T) {
		_, err := customer.NewBusinessCustomer(
			kernel.NewUUID(), "Zhang Wei", "13900139000", "", "",
			customer.BusinessInfo{TaxNumber: "91110000"},
		)
		require.ErrorIs(t, err, customer.ErrCompanyNameIsRequired)
	})

	t.Run("creates_business_customer", func(t *testing.T) {
		c, err := customer.NewBusinessCustomer(
			kernel.NewUUID(), "Zhang Wei", "13900139000", "", "",
			customer.BusinessInfo{CompanyName: "Fast Fleet Ltd", ContactPerson: "Zhang Wei"},
		)
		require.NoError(t, err)
		assert.Equal(t, customer.TypeBusiness, c.CustomerType())
		assert.Equal(t, "Fast Fleet Ltd", c.Business().CompanyName)
	})
}

func TestCustomer_AddVehicle(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Wang Lei", "13800138000", "", "")
	require.NoError(t, err)

	vehicleID := kernel.NewUUID()
	require.NoError(t, c.AddVehicle(vehicleID))
	require.Len(t, c.Vehicles(), 1)

	// Idempotent: re-adding the same vehicle does not duplicate the reference.
	require.NoError(t, c.AddVehicle(vehicleID))
	require.Len(t, c.Vehicles(), 1)

	require.NoError(t, c.AddVehicle(kernel.NewUUID()))
	require.Len(t, c.Vehicles(), 2)

	require.Error(t, c.AddVehicle(kernel.UUID{}))
}

func TestCustomer_UpdateContact(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Wang Lei", "13800138000", "old@example.com", "Old Rd 1")
	require.NoError(t, err)

	require.NoError(t, c.UpdateContact("Wang Lei", "13811112222", "", ""))
	assert.Equal(t, "13811112222", c.Phone())
	assert.Empty(t, c.Email())

	require.Error(t, c.UpdateContact("", "13811112222", "", ""))
}

func TestRestoreCustomer(t *testing.T) {
	vehicles := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	c, err := customer.RestoreCustomer(
		kernel.NewUUID(), "Fast Fleet Ltd", customer.TypeBusiness,
		customer.BusinessInfo{CompanyName: "Fast Fleet Ltd"},
		"13900139000", "", "", vehicles,
	)
	require.NoError(t, err)
	assert.Len(t, c.Vehicles(), 2)

	_, err = customer.RestoreCustomer(
		kernel.NewUUID(), "Broken", customer.Type("corporate"),
		customer.BusinessInfo{}, "139", "", "", nil,
	)
	require.Error(t, err, "unknown customer type is rejected")

	_, err = customer.RestoreCustomer(
		kernel.NewUUID(), "No Company", customer.TypeBusiness,
		customer.BusinessInfo{}, "139", "", "", nil,
	)
	require.ErrorIs(t, err, customer.ErrCompanyNameIsRequired)
}

func TestCustomer_ZeroValueIsInvalid(t *testing.T) {
	var c customer.Customer
	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
}
