package queries_test

import (
	"testing"

	"sellerhub/internal/adapters/out/inmemory/orderstore"
	"sellerhub/internal/core/application/usecases/queries"
	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, store *orderstore.Store, number string) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Asha Patel", "+15550002222")
	require.NoError(t, err)
	price, err := kernel.NewMoney(250)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Milk 1L", 2, price)
	require.NoError(t, err)
	total, err := kernel.NewMoney(500)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), number, customer, []*order.Item{item}, total)
	require.NoError(t, err)
	require.NoError(t, store.Add(t.Context(), aggregate))
	return aggregate
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	t.Run("should return full detail for an existing order", func(t *testing.T) {
		ctx := t.Context()
		store := orderstore.NewStore()
		aggregate := placeOrder(t, store, "ORD-1042")

		query, err := queries.NewGetOrderQuery(aggregate.ID())
		require.NoError(t, err)

		h := queries.NewGetOrderQueryHandler(store)
		resp, err := h.Handle(ctx, query)
		require.NoError(t, err)

		assert.Equal(t, aggregate.ID(), resp.ID)
		assert.Equal(t, "ORD-1042", resp.Number)
		assert.Equal(t, "Asha Patel", resp.CustomerName)
		assert.Equal(t, order.StatusNew, resp.Status)
		assert.Equal(t, order.PaymentPending, resp.PaymentStatus)
		assert.Equal(t, int64(500), resp.PaymentAmount)
		assert.Len(t, resp.Items, 1)
		assert.Len(t, resp.Timeline, 1)
		assert.Nil(t, resp.Delivery)
		assert.ElementsMatch(t,
			[]order.Status{order.StatusAccepted, order.StatusDeclined},
			resp.AllowedTransitions)
	})

	t.Run("should include delivery assignment once assigned", func(t *testing.T) {
		ctx := t.Context()
		store := orderstore.NewStore()
		aggregate := placeOrder(t, store, "ORD-1043")

		require.NoError(t, aggregate.Transition(order.StatusAccepted, ""))
		require.NoError(t, aggregate.Transition(order.StatusPreparing, ""))
		require.NoError(t, aggregate.Transition(order.StatusReady, ""))
		courierID := kernel.NewUUID()
		require.NoError(t, aggregate.AssignDelivery(courierID, "Ravi", "+15550001111"))
		require.NoError(t, store.Update(ctx, aggregate))

		query, err := queries.NewGetOrderQuery(aggregate.ID())
		require.NoError(t, err)

		resp, err := queries.NewGetOrderQueryHandler(store).Handle(ctx, query)
		require.NoError(t, err)

		require.NotNil(t, resp.Delivery)
		assert.Equal(t, courierID, resp.Delivery.CourierID)
		assert.Equal(t, "Ravi", resp.Delivery.CourierName)
		assert.Len(t, resp.Timeline, 5)
		assert.Equal(t, order.StatusAssigned, resp.Status)
	})

	t.Run("should return not found for unknown order", func(t *testing.T) {
		store := orderstore.NewStore()
		query, err := queries.NewGetOrderQuery(kernel.NewUUID())
		require.NoError(t, err)

		_, err = queries.NewGetOrderQueryHandler(store).Handle(t.Context(), query)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
