package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCode(t *testing.T, s string) order.TrackingCode {
	t.Helper()
	code, err := order.NewTrackingCode(s)
	require.NoError(t, err)
	return code
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(mustCode(t, "Ada123"), "Ada", 3, "ada@example.com", "shop@coolbeans.biz", "ssn-123")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates shipped order with all fields", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "Ada123", o.Code().String())
		assert.Equal(t, "Ada", o.CustomerName())
		assert.Equal(t, uint32(3), o.Quantity())
		assert.Equal(t, "ada@example.com", o.CustomerEmail())
		assert.Equal(t, "shop@coolbeans.biz", o.SenderEmail())
		assert.Equal(t, "ssn-123", o.Reference())
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("collects every validation error", func(t *testing.T) {
		_, err := order.NewOrder(order.TrackingCode{}, " ", 0, "", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "customer name")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "customer email")
		assert.Contains(t, err.Error(), "sender email")
		assert.Contains(t, err.Error(), "reference")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores persisted status", func(t *testing.T) {
		o, err := order.RestoreOrder(mustCode(t, "Ada123"), "Ada", 3, "ada@example.com", "shop@coolbeans.biz", "ssn-123", order.Delivered)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects corrupt status", func(t *testing.T) {
		_, err := order.RestoreOrder(mustCode(t, "Ada123"), "Ada", 3, "ada@example.com", "shop@coolbeans.biz", "ssn-123", order.Status(9))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Transitions(t *testing.T) {
	t.Run("full lifecycle with clamping", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Revert())
		assert.Equal(t, order.Shipped, o.Status(), "revert on shipped is a no-op")

		require.NoError(t, o.Advance())
		assert.Equal(t, order.InTransit, o.Status())

		require.NoError(t, o.Advance())
		assert.Equal(t, order.Delivered, o.Status())

		require.NoError(t, o.Advance())
		assert.Equal(t, order.Delivered, o.Status(), "advance on delivered is a no-op")

		require.NoError(t, o.Revert())
		assert.Equal(t, order.InTransit, o.Status(), "delivered can be reverted")
	})

	t.Run("invalid transition leaves status untouched", func(t *testing.T) {
		o := newTestOrder(t)

		require.ErrorIs(t, o.Apply(order.Transition(0)), order.ErrTransitionIsInvalid)
		assert.Equal(t, order.Shipped, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := newTestOrder(t)
	b, err := order.NewOrder(mustCode(t, "Ada123"), "Someone", 1, "x@example.com", "shop@coolbeans.biz", "r")
	require.NoError(t, err)
	c, err := order.NewOrder(mustCode(t, "Bob456"), "Ada", 3, "ada@example.com", "shop@coolbeans.biz", "ssn-123")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
