package services_test

import (
	"testing"
	"time"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, phone string, amount int64) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Test Customer", phone)
	require.NoError(t, err)

	price, err := kernel.NewMoney(amount)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), "Atta 10kg", 1, price)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-T", customer, []*order.Item{item}, price)
	require.NoError(t, err)
	return o
}

// driveTo advances an order to the target status along the happy path.
func driveTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()

	path := []order.Status{
		order.StatusAccepted, order.StatusPreparing, order.StatusReady,
		order.StatusAssigned, order.StatusOutForDelivery, order.StatusDelivered,
	}
	for _, step := range path {
		if step == order.StatusAssigned {
			require.NoError(t, o.AssignDelivery(kernel.NewUUID(), "Raj", "+919900112233"))
		} else {
			require.NoError(t, o.Transition(step, ""))
		}
		if step == target {
			return
		}
	}
	t.Fatalf("target status %s not on happy path", target)
}

func TestEarningsProjector_Project(t *testing.T) {
	projector := services.NewEarningsProjector()

	t.Run("should count delivered and paid orders as completed earnings", func(t *testing.T) {
		o := buildOrder(t, "+911111111111", 50000)
		driveTo(t, o, order.StatusDelivered)
		require.NoError(t, o.SetPaymentStatus(order.PaymentReceived))

		summary, err := projector.Project([]*order.Order{o}, services.EarningsWindow{})

		require.NoError(t, err)
		assert.Equal(t, int64(50000), summary.Completed.Amount())
		assert.Equal(t, 1, summary.CompletedOrders)
		assert.Equal(t, int64(0), summary.Pending.Amount())
		assert.Equal(t, 0, summary.PendingOrders)
	})

	t.Run("should count paid orders with a courier as pending earnings", func(t *testing.T) {
		assigned := buildOrder(t, "+911111111111", 20000)
		driveTo(t, assigned, order.StatusAssigned)
		require.NoError(t, assigned.SetPaymentStatus(order.PaymentReceived))

		outForDelivery := buildOrder(t, "+912222222222", 30000)
		driveTo(t, outForDelivery, order.StatusOutForDelivery)
		require.NoError(t, outForDelivery.SetPaymentStatus(order.PaymentReceived))

		summary, err := projector.Project([]*order.Order{assigned, outForDelivery}, services.EarningsWindow{})

		require.NoError(t, err)
		assert.Equal(t, int64(50000), summary.Pending.Amount())
		assert.Equal(t, 2, summary.PendingOrders)
		assert.Equal(t, 0, summary.CompletedOrders)
	})

	t.Run("should ignore delivered orders whose payment is not received", func(t *testing.T) {
		o := buildOrder(t, "+911111111111", 50000)
		driveTo(t, o, order.StatusDelivered)
		// payment still pending

		summary, err := projector.Project([]*order.Order{o}, services.EarningsWindow{})

		require.NoError(t, err)
		assert.Equal(t, 0, summary.CompletedOrders)
		assert.Equal(t, 0, summary.PendingOrders)
	})

	t.Run("should ignore paid orders not yet with a courier", func(t *testing.T) {
		o := buildOrder(t, "+911111111111", 50000)
		driveTo(t, o, order.StatusPreparing)
		require.NoError(t, o.SetPaymentStatus(order.PaymentReceived))

		summary, err := projector.Project([]*order.Order{o}, services.EarningsWindow{})

		require.NoError(t, err)
		assert.Equal(t, 0, summary.CompletedOrders)
		assert.Equal(t, 0, summary.PendingOrders)
	})

	t.Run("should ignore cancelled orders even when paid", func(t *testing.T) {
		o := buildOrder(t, "+911111111111", 50000)
		driveTo(t, o, order.StatusOutForDelivery)
		require.NoError(t, o.SetPaymentStatus(order.PaymentReceived))
		require.NoError(t, o.Transition(order.StatusCancelled, "customer unreachable"))

		summary, err := projector.Project([]*order.Order{o}, services.EarningsWindow{})

		require.NoError(t, err)
		assert.Equal(t, 0, summary.CompletedOrders)
		assert.Equal(t, 0, summary.PendingOrders)
	})

	t.Run("should exclude orders delivered outside the window", func(t *testing.T) {
		o := buildOrder(t, "+911111111111", 50000)
		driveTo(t, o, order.StatusDelivered)
		require.NoError(t, o.SetPaymentStatus(order.PaymentReceived))

		past := services.EarningsWindow{
			From: time.Now().Add(-2 * time.Hour),
			To:   time.Now().Add(-time.Hour),
		}

		summary, err := projector.Project([]*order.Order{o}, past)

		require.NoError(t, err)
		assert.Equal(t, 0, summary.CompletedOrders)
	})

	t.Run("should include orders delivered inside the window", func(t *testing.T) {
		o := buildOrder(t, "+911111111111", 50000)
		driveTo(t, o, order.StatusDelivered)
		require.NoError(t, o.SetPaymentStatus(order.PaymentReceived))

		current := services.EarningsWindow{
			From: time.Now().Add(-time.Hour),
			To:   time.Now().Add(time.Hour),
		}

		summary, err := projector.Project([]*order.Order{o}, current)

		require.NoError(t, err)
		assert.Equal(t, 1, summary.CompletedOrders)
	})

	t.Run("should return zero summary for no orders", func(t *testing.T) {
		summary, err := projector.Project(nil, services.EarningsWindow{})

		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.Completed.Amount())
		assert.Equal(t, int64(0), summary.Pending.Amount())
	})

	t.Run("should not mutate projected orders", func(t *testing.T) {
		o := buildOrder(t, "+911111111111", 50000)
		driveTo(t, o, order.StatusDelivered)
		require.NoError(t, o.SetPaymentStatus(order.PaymentReceived))
		timelineLen := len(o.Timeline())

		_, err := projector.Project([]*order.Order{o}, services.EarningsWindow{})

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Len(t, o.Timeline(), timelineLen)
	})
}

func TestEarningsWindow_Contains(t *testing.T) {
	t.Run("should treat zero bounds as unbounded", func(t *testing.T) {
		assert.True(t, services.EarningsWindow{}.Contains(time.Now()))
		assert.True(t, services.EarningsWindow{}.Contains(time.Time{}.Add(time.Hour)))
	})

	t.Run("should include From and exclude To", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		w := services.EarningsWindow{From: from, To: to}

		assert.True(t, w.Contains(from))
		assert.True(t, w.Contains(to.Add(-time.Nanosecond)))
		assert.False(t, w.Contains(to))
		assert.False(t, w.Contains(from.Add(-time.Nanosecond)))
	})
}
