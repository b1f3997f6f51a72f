package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from order.Status
		to   order.Status
	}{
		{order.StatusScheduled, order.StatusInProgress},
		{order.StatusInProgress, order.StatusReadyForPickup},
		{order.StatusReadyForPickup, order.StatusPickedUp},
		{order.StatusPickedUp, order.StatusWashing},
		{order.StatusPickedUp, order.StatusCompleted},
		{order.StatusWashing, order.StatusWashed},
		{order.StatusWashed, order.StatusPickingUp},
		{order.StatusPickingUp, order.StatusDeliveryPickedUp},
		{order.StatusDeliveryPickedUp, order.StatusDelivered},
	}

	for _, tc := range allowed {
		t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			assert.True(t, tc.from.CanTransitionTo(tc.to))

			next, err := tc.from.Advance(tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
		})
	}

	t.Run("should allow cancelling from every non-terminal status", func(t *testing.T) {
		nonTerminal := []order.Status{
			order.StatusScheduled, order.StatusInProgress, order.StatusReadyForPickup,
			order.StatusPickedUp, order.StatusWashing, order.StatusWashed,
			order.StatusPickingUp, order.StatusDeliveryPickedUp,
		}
		for _, s := range nonTerminal {
			assert.True(t, s.CanTransitionTo(order.StatusCancelled), s.String())
		}
	})

	t.Run("should reject skipping a status", func(t *testing.T) {
		_, err := order.StatusScheduled.Advance(order.StatusWashing)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "Scheduled -> Washing")
	})

	t.Run("should reject leaving a terminal status", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusDelivered, order.StatusCompleted, order.StatusCancelled} {
			assert.True(t, s.IsTerminal(), s.String())
			assert.False(t, s.CanTransitionTo(order.StatusCancelled), s.String())
		}
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		assert.False(t, order.StatusWashing.CanTransitionTo(order.StatusPickedUp))
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip every wire value", func(t *testing.T) {
		names := []string{
			"Scheduled", "In Progress", "Ready for Pickup", "Picked Up",
			"Washing", "Washed", "Picking Up", "Delivery Picked Up",
			"Delivered", "Completed", "Cancelled",
		}
		for _, name := range names {
			s, err := order.StatusFromString(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("should fail for an unknown value", func(t *testing.T) {
		_, err := order.StatusFromString("Lost")

		require.Error(t, err)
	})
}

func TestLeg(t *testing.T) {
	t.Run("should parse pickup and delivery", func(t *testing.T) {
		pickup, err := order.LegFromString("pickup")
		require.NoError(t, err)
		assert.Equal(t, order.StatusReadyForPickup, pickup.ClaimedStatus())

		delivery, err := order.LegFromString("delivery")
		require.NoError(t, err)
		assert.Equal(t, order.StatusPickingUp, delivery.ClaimedStatus())
	})

	t.Run("should fail for an unknown leg", func(t *testing.T) {
		_, err := order.LegFromString("return")

		require.Error(t, err)
	})
}

func TestCheckpoint(t *testing.T) {
	t.Run("should map each checkpoint to its statuses", func(t *testing.T) {
		cases := []struct {
			name     string
			required order.Status
			next     order.Status
		}{
			{"pickup", order.StatusReadyForPickup, order.StatusPickedUp},
			{"vendor-receipt", order.StatusPickedUp, order.StatusWashing},
			{"delivery-pickup", order.StatusPickingUp, order.StatusDeliveryPickedUp},
			{"final-delivery", order.StatusDeliveryPickedUp, order.StatusDelivered},
		}
		for _, tc := range cases {
			cp, err := order.CheckpointFromString(tc.name)
			require.NoError(t, err, tc.name)
			assert.Equal(t, tc.required, cp.RequiredStatus(), tc.name)
			assert.Equal(t, tc.next, cp.NextStatus(), tc.name)
		}
	})

	t.Run("should fail for an unknown checkpoint", func(t *testing.T) {
		_, err := order.CheckpointFromString("warehouse")

		require.Error(t, err)
	})
}
