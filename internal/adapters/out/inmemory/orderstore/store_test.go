package orderstore_test

import (
	"testing"

	"sellerhub/internal/adapters/out/inmemory/orderstore"
	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Anita Sharma", "+919800000001")
	require.NoError(t, err)

	price, err := kernel.NewMoney(45000)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), "Basmati Rice 5kg", 1, price)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", customer, []*order.Item{item}, price)
	require.NoError(t, err)
	return o
}

func TestStore_AddAndGet(t *testing.T) {
	t.Run("should store and retrieve an order", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()
		o := newOrder(t)

		require.NoError(t, store.Add(ctx, o))

		got, err := store.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
		assert.Equal(t, order.StatusNew, got.Status())
		assert.Len(t, got.Timeline(), 1)
	})

	t.Run("should reject duplicate ids", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()
		o := newOrder(t)

		require.NoError(t, store.Add(ctx, o))
		err := store.Add(ctx, o)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail lookup of unknown order", func(t *testing.T) {
		store := orderstore.NewStore()

		_, err := store.Get(t.Context(), kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should isolate stored state from caller mutations", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()
		o := newOrder(t)
		require.NoError(t, store.Add(ctx, o))

		// mutate the caller's aggregate after storing
		require.NoError(t, o.Transition(order.StatusAccepted, ""))

		got, err := store.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.StatusNew, got.Status())
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("should persist transitioned state", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()
		o := newOrder(t)
		require.NoError(t, store.Add(ctx, o))

		require.NoError(t, o.Transition(order.StatusAccepted, ""))
		require.NoError(t, store.Update(ctx, o))

		got, err := store.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, got.Status())
		assert.Len(t, got.Timeline(), 2)
	})

	t.Run("should fail for unknown order", func(t *testing.T) {
		store := orderstore.NewStore()

		err := store.Update(t.Context(), newOrder(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestStore_Listings(t *testing.T) {
	t.Run("should list all orders in insertion order", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()
		first := newOrder(t)
		second := newOrder(t)
		require.NoError(t, store.Add(ctx, first))
		require.NoError(t, store.Add(ctx, second))

		all, err := store.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.True(t, all[0].IsEqual(first))
		assert.True(t, all[1].IsEqual(second))
	})

	t.Run("should filter by status set", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()

		pending := newOrder(t)
		require.NoError(t, store.Add(ctx, pending))

		accepted := newOrder(t)
		require.NoError(t, accepted.Transition(order.StatusAccepted, ""))
		require.NoError(t, store.Add(ctx, accepted))

		declined := newOrder(t)
		require.NoError(t, declined.Transition(order.StatusDeclined, "out of stock"))
		require.NoError(t, store.Add(ctx, declined))

		active, err := store.GetAllInStatuses(ctx, order.StatusNew, order.StatusAccepted)
		require.NoError(t, err)
		require.Len(t, active, 2)

		terminal, err := store.GetAllInStatuses(ctx, order.StatusDeclined)
		require.NoError(t, err)
		require.Len(t, terminal, 1)
		assert.True(t, terminal[0].IsEqual(declined))

		none, err := store.GetAllInStatuses(ctx, order.StatusDelivered)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("should delete an order", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()
		o := newOrder(t)
		require.NoError(t, store.Add(ctx, o))

		require.NoError(t, store.Remove(ctx, o.ID()))

		_, err := store.Get(ctx, o.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("should fail for unknown order", func(t *testing.T) {
		store := orderstore.NewStore()

		err := store.Remove(t.Context(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestUnitOfWork(t *testing.T) {
	t.Run("should apply buffered writes on commit", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()
		o := newOrder(t)

		uow := store.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, o))

		// nothing visible before commit
		_, err := store.Get(ctx, o.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		require.NoError(t, uow.Commit(ctx))

		got, err := store.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
	})

	t.Run("should discard buffered writes on rollback", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()
		o := newOrder(t)

		uow := store.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
		require.NoError(t, uow.Rollback(ctx))

		_, err := store.Get(ctx, o.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should tolerate rollback after commit", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()

		uow := store.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, newOrder(t)))
		require.NoError(t, uow.Commit(ctx))
		require.NoError(t, uow.Rollback(ctx))
	})

	t.Run("should reject commit without begin", func(t *testing.T) {
		store := orderstore.NewStore()

		err := store.Create().Commit(t.Context())

		require.ErrorIs(t, err, orderstore.ErrNoActiveTransaction)
	})

	t.Run("should reject repository use outside a transaction", func(t *testing.T) {
		store := orderstore.NewStore()
		uow := store.Create()

		err := uow.OrderRepository().Add(t.Context(), newOrder(t))

		require.ErrorIs(t, err, orderstore.ErrNoActiveTransaction)
	})

	t.Run("should serialize units of work", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()
		o := newOrder(t)
		require.NoError(t, store.Add(ctx, o))

		first := store.Create()
		require.NoError(t, first.Begin(ctx))

		started := make(chan struct{})
		committed := make(chan struct{})
		go func() {
			second := store.Create()
			close(started)
			_ = second.Begin(ctx) // blocks until first releases
			_ = second.Commit(ctx)
			close(committed)
		}()

		<-started
		select {
		case <-committed:
			t.Fatal("second unit of work ran while first was active")
		default:
		}

		require.NoError(t, first.Commit(ctx))
		<-committed
	})

	t.Run("should buffer updates and removes", func(t *testing.T) {
		store := orderstore.NewStore()
		ctx := t.Context()

		kept := newOrder(t)
		dropped := newOrder(t)
		require.NoError(t, store.Add(ctx, kept))
		require.NoError(t, store.Add(ctx, dropped))

		uow := store.Create()
		require.NoError(t, uow.Begin(ctx))
		repo := uow.OrderRepository()

		loaded, err := repo.Get(ctx, kept.ID())
		require.NoError(t, err)
		require.NoError(t, loaded.Transition(order.StatusAccepted, ""))
		require.NoError(t, repo.Update(ctx, loaded))
		require.NoError(t, repo.Remove(ctx, dropped.ID()))
		require.NoError(t, uow.Commit(ctx))

		got, err := store.Get(ctx, kept.ID())
		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, got.Status())

		_, err = store.Get(ctx, dropped.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
