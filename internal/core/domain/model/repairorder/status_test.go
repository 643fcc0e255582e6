package repairorder_test

import (
	"testing"

	"autoshop/internal/core/domain/model/repairorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[repairorder.Status]string{
		repairorder.Unknown:    "unknown",
		repairorder.Pending:    "pending",
		repairorder.Inspecting: "inspecting",
		repairorder.Quoted:     "quoted",
		repairorder.Repairing:  "repairing",
		repairorder.Completed:  "completed",
		repairorder.Delivered:  "delivered",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
	assert.Equal(t, "unknown", repairorder.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("valid_names", func(t *testing.T) {
		for _, name := range []string{"pending", "inspecting", "quoted", "repairing", "completed", "delivered"} {
			status, err := repairorder.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("invalid_names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "Pending", "done"} {
			_, err := repairorder.StatusFromString(name)
			require.Error(t, err, "name %q should be rejected", name)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, repairorder.Pending.Validate())
	require.NoError(t, repairorder.Delivered.Validate())
	require.Error(t, repairorder.Unknown.Validate())
	require.Error(t, repairorder.Status(42).Validate())
}

func TestStatus_TransitionTable(t *testing.T) {
	type move struct {
		from repairorder.Status
		to   repairorder.Status
	}

	allowed := []move{
		{repairorder.Pending, repairorder.Inspecting},
		{repairorder.Inspecting, repairorder.Inspecting},
		{repairorder.Inspecting, repairorder.Quoted},
		{repairorder.Quoted, repairorder.Quoted},
		{repairorder.Quoted, repairorder.Repairing},
		{repairorder.Repairing, repairorder.Completed},
		{repairorder.Completed, repairorder.Delivered},
	}
	for _, m := range allowed {
		got, err := m.from.TransitionTo(m.to)
		require.NoError(t, err, "%s -> %s should be allowed", m.from, m.to)
		assert.Equal(t, m.to, got)
	}

	rejected := []move{
		{repairorder.Pending, repairorder.Quoted},
		{repairorder.Pending, repairorder.Delivered},
		{repairorder.Inspecting, repairorder.Pending},
		{repairorder.Inspecting, repairorder.Repairing},
		{repairorder.Quoted, repairorder.Inspecting},
		{repairorder.Repairing, repairorder.Repairing},
		{repairorder.Repairing, repairorder.Delivered},
		{repairorder.Completed, repairorder.Repairing},
		{repairorder.Delivered, repairorder.Delivered},
		{repairorder.Delivered, repairorder.Pending},
	}
	for _, m := range rejected {
		_, err := m.from.TransitionTo(m.to)
		require.Error(t, err, "%s -> %s should be rejected", m.from, m.to)
	}
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := repairorder.Pending.TransitionTo(repairorder.Unknown)
	require.Error(t, err)
}
