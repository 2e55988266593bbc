package order_test

import (
	"testing"

	"transport/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.StatusPending.Validate())
	require.NoError(t, order.StatusInProgress.Validate())
	require.NoError(t, order.StatusCompleted.Validate())
	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.StatusPending.String())
	assert.Equal(t, "InProgress", order.StatusInProgress.String())
	assert.Equal(t, "Completed", order.StatusCompleted.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_canonical_names", func(t *testing.T) {
		for _, name := range []string{"Pending", "InProgress", "Completed"} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		_, err := order.StatusFromString("Cancelled")
		require.Error(t, err)
	})
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, order.StatusPending.IsActive())
	assert.True(t, order.StatusInProgress.IsActive())
	assert.False(t, order.StatusCompleted.IsActive())
	assert.False(t, order.StatusUnknown.IsActive())
}
