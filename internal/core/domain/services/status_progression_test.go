package services_test

import (
	"testing"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreOrder(t *testing.T, id kernel.ID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, []kernel.ID{1}, status, time.Now())
	require.NoError(t, err)
	return o
}

func TestStatusProgression_Tick(t *testing.T) {
	t.Run("each order advances exactly one step", func(t *testing.T) {
		orders := []*order.Order{
			restoreOrder(t, 1, order.Preparing),
			restoreOrder(t, 2, order.OutForDelivery),
			restoreOrder(t, 3, order.Delivered),
		}

		transitions, err := services.NewStatusProgression().Tick(orders)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, orders[0].Status())
		assert.Equal(t, order.Delivered, orders[1].Status())
		assert.Equal(t, order.Delivered, orders[2].Status())
		assert.Equal(t, []services.Transition{
			{OrderID: 1, From: order.Preparing, To: order.OutForDelivery},
			{OrderID: 2, From: order.OutForDelivery, To: order.Delivered},
		}, transitions)
	})

	t.Run("three ticks walk the whole progression", func(t *testing.T) {
		o := restoreOrder(t, 1, order.Preparing)
		progression := services.NewStatusProgression()

		expected := []order.Status{order.OutForDelivery, order.Delivered, order.Delivered}
		for _, want := range expected {
			_, err := progression.Tick([]*order.Order{o})
			require.NoError(t, err)
			assert.Equal(t, want, o.Status())
		}
	})

	t.Run("no orders", func(t *testing.T) {
		transitions, err := services.NewStatusProgression().Tick(nil)

		require.NoError(t, err)
		assert.Empty(t, transitions)
	})

	t.Run("unconstructed order aborts before any change", func(t *testing.T) {
		first := restoreOrder(t, 1, order.Preparing)

		_, err := services.NewStatusProgression().Tick([]*order.Order{first, {}})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		assert.Equal(t, order.Preparing, first.Status())
	})
}
