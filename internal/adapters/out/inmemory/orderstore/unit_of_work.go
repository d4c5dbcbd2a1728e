package orderstore

import (
	"context"
	"errors"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/core/ports"
	"sellerhub/internal/pkg/errs"
)

// Transaction lifecycle errors.
var (
	// ErrNoActiveTransaction is returned when committing without Begin.
	ErrNoActiveTransaction = errors.New("no active transaction")
	// ErrTransactionAlreadyActive is returned when Begin is called twice.
	ErrTransactionAlreadyActive = errors.New("transaction already active")
)

// UnitOfWork is an in-memory transaction over a Store. Begin takes the
// store's transaction mutex, which serializes units of work: no two
// transactions interleave. Writes issued through the transactional repository
// are buffered and applied to the store only on Commit; Rollback discards
// them. Reads observe the committed store state (the transaction mutex
// guarantees it cannot change mid-transaction).
type UnitOfWork struct {
	store  *Store
	active bool

	pendingAdds    []*order.Order
	pendingUpdates []*order.Order
	pendingRemoves []kernel.UUID
}

// Begin starts the transaction, blocking until any other active unit of work
// on the same store commits or rolls back.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTransactionAlreadyActive
	}
	u.store.txMu.Lock()
	u.active = true
	return nil
}

// Commit applies all buffered writes to the store atomically and releases
// the transaction.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	u.store.mu.Lock()
	for _, aggregate := range u.pendingAdds {
		if err := u.store.add(aggregate); err != nil {
			u.store.mu.Unlock()
			u.release()
			return err
		}
	}
	for _, aggregate := range u.pendingUpdates {
		if err := u.store.update(aggregate); err != nil {
			u.store.mu.Unlock()
			u.release()
			return err
		}
	}
	for _, id := range u.pendingRemoves {
		if err := u.store.remove(id); err != nil {
			u.store.mu.Unlock()
			u.release()
			return err
		}
	}
	u.store.mu.Unlock()

	u.release()
	return nil
}

// Rollback discards buffered writes and releases the transaction.
// Rolling back an inactive unit of work is a no-op, so it is safe to defer
// Rollback unconditionally after Commit.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}
	u.release()
	return nil
}

// OrderRepository returns the transactional repository view.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &txRepository{uow: u}
}

func (u *UnitOfWork) release() {
	u.pendingAdds = nil
	u.pendingUpdates = nil
	u.pendingRemoves = nil
	u.active = false
	u.store.txMu.Unlock()
}

// txRepository buffers writes on the owning unit of work and serves reads
// from the committed store state.
type txRepository struct {
	uow *UnitOfWork
}

func (r *txRepository) Add(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	clone, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}
	r.uow.pendingAdds = append(r.uow.pendingAdds, clone)
	return nil
}

func (r *txRepository) Update(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	clone, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}
	r.uow.pendingUpdates = append(r.uow.pendingUpdates, clone)
	return nil
}

func (r *txRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	return r.uow.store.Get(ctx, id)
}

func (r *txRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	return r.uow.store.GetAll(ctx)
}

func (r *txRepository) GetAllInStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	return r.uow.store.GetAllInStatuses(ctx, statuses...)
}

func (r *txRepository) Remove(_ context.Context, id kernel.UUID) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := id.Validate(); err != nil {
		return err
	}

	r.uow.store.mu.RLock()
	_, exists := r.uow.store.orders[id]
	r.uow.store.mu.RUnlock()
	if !exists {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	r.uow.pendingRemoves = append(r.uow.pendingRemoves, id)
	return nil
}
