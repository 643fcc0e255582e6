package appointment_test

import (
	"testing"
	"time"

	"autoshop/internal/core/domain/model/appointment"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()
	a, err := appointment.NewAppointment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		appointment.ServiceMaintenance,
		"60k km service", "",
	)
	require.NoError(t, err)
	return a
}

func TestNewAppointment(t *testing.T) {
	t.Run("starts_pending", func(t *testing.T) {
		a := newAppointment(t)
		assert.Equal(t, appointment.StatusPending, a.Status())
		assert.Equal(t, appointment.ServiceMaintenance, a.ServiceType())
		assert.Empty(t, a.CancelReason())
		require.NoError(t, a.Validate())
	})

	t.Run("rejects_zero_date", func(t *testing.T) {
		_, err := appointment.NewAppointment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Time{}, appointment.ServiceRepair, "", "",
		)
		require.ErrorIs(t, err, appointment.ErrAppointmentDateIsRequired)
	})

	t.Run("rejects_unknown_service_type", func(t *testing.T) {
		_, err := appointment.NewAppointment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), appointment.ServiceType("detailing"), "", "",
		)
		require.Error(t, err)
	})
}

func TestAppointment_Lifecycle(t *testing.T) {
	t.Run("pending_confirmed_completed", func(t *testing.T) {
		a := newAppointment(t)

		require.NoError(t, a.Confirm())
		assert.Equal(t, appointment.StatusConfirmed, a.Status())

		require.NoError(t, a.Complete())
		assert.Equal(t, appointment.StatusCompleted, a.Status())
	})

	t.Run("complete_requires_confirmed", func(t *testing.T) {
		a := newAppointment(t)
		require.Error(t, a.Complete())
		assert.Equal(t, appointment.StatusPending, a.Status())
	})

	t.Run("confirm_is_not_repeatable", func(t *testing.T) {
		a := newAppointment(t)
		require.NoError(t, a.Confirm())
		require.Error(t, a.Confirm())
	})
}

func TestAppointment_Cancel(t *testing.T) {
	t.Run("requires_reason", func(t *testing.T) {
		a := newAppointment(t)
		require.ErrorIs(t, a.Cancel(""), appointment.ErrCancelReasonIsRequired)
		assert.Equal(t, appointment.StatusPending, a.Status())
	})

	t.Run("cancels_pending_and_confirmed", func(t *testing.T) {
		a := newAppointment(t)
		require.NoError(t, a.Cancel("customer rescheduled"))
		assert.Equal(t, appointment.StatusCancelled, a.Status())
		assert.Equal(t, "customer rescheduled", a.CancelReason())

		b := newAppointment(t)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.Cancel("no-show"))
		assert.Equal(t, appointment.StatusCancelled, b.Status())
	})

	t.Run("completed_cannot_be_cancelled", func(t *testing.T) {
		a := newAppointment(t)
		require.NoError(t, a.Confirm())
		require.NoError(t, a.Complete())
		require.Error(t, a.Cancel("too late"))
	})
}

func TestRestoreAppointment(t *testing.T) {
	t.Run("restores_state", func(t *testing.T) {
		a, err := appointment.RestoreAppointment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
			appointment.ServiceInspection, "annual check", "call first",
			appointment.StatusConfirmed, "",
		)
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusConfirmed, a.Status())
	})

	t.Run("cancelled_requires_reason", func(t *testing.T) {
		_, err := appointment.RestoreAppointment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), appointment.ServiceOther, "", "",
			appointment.StatusCancelled, "",
		)
		require.ErrorIs(t, err, appointment.ErrCancelReasonIsRequired)
	})
}

func TestAppointment_ZeroValueIsInvalid(t *testing.T) {
	var a appointment.Appointment
	require.ErrorIs(t, a.Validate(), appointment.ErrAppointmentIsNotConstructed)
}
