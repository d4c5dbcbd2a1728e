// Package orderstore provides an in-memory implementation of the order
// repository and unit-of-work ports. All state lives in process memory and
// every unit of work is serialized through a single mutex, so a dispatched
// command is fully applied before the next one observes the store.
//
// The store hands out deep copies of aggregates: changes made by a caller
// never reach the store until Update is called and the unit of work commits,
// which gives rejected operations all-or-nothing semantics for free.
package orderstore

import (
	"context"
	"fmt"
	"sync"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/core/ports"
	"sellerhub/internal/pkg/errs"
)

// Store is an in-memory order store. The zero value is not usable; create
// instances with NewStore.
//
// Store itself implements ports.OrderRepository for direct, auto-committed
// access (used by read paths and tests). Write paths should go through a
// unit of work obtained from Create, which buffers writes until commit.
type Store struct {
	// mu guards orders and sequence
	mu sync.RWMutex
	// txMu serializes units of work
	txMu sync.Mutex

	orders map[kernel.UUID]*order.Order
	// sequence preserves insertion order for deterministic listings
	sequence []kernel.UUID
}

// NewStore creates an empty in-memory order store.
func NewStore() *Store {
	return &Store{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// Create returns a new unit of work bound to this store.
// Implements ports.UnitOfWorkFactory.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// Add stores a new order. Fails if an order with the same id already exists.
func (s *Store) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	clone, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(clone)
}

// Update replaces the stored state of an existing order.
func (s *Store) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	clone, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(clone)
}

// Get retrieves a deep copy of the order with the given id.
func (s *Store) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return cloneOrder(stored)
}

// GetAll retrieves deep copies of every order in insertion order.
func (s *Store) GetAll(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*order.Order, 0, len(s.sequence))
	for _, id := range s.sequence {
		clone, err := cloneOrder(s.orders[id])
		if err != nil {
			return nil, err
		}
		out = append(out, clone)
	}
	return out, nil
}

// GetAllInStatuses retrieves deep copies of orders whose status is in the
// given set, in insertion order.
func (s *Store) GetAllInStatuses(_ context.Context, statuses ...order.Status) ([]*order.Order, error) {
	wanted := make(map[order.Status]bool, len(statuses))
	for _, status := range statuses {
		wanted[status] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*order.Order, 0)
	for _, id := range s.sequence {
		stored := s.orders[id]
		if !wanted[stored.Status()] {
			continue
		}
		clone, err := cloneOrder(stored)
		if err != nil {
			return nil, err
		}
		out = append(out, clone)
	}
	return out, nil
}

// Remove deletes the order with the given id.
func (s *Store) Remove(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(id)
}

// add inserts without locking; callers hold mu.
func (s *Store) add(clone *order.Order) error {
	if _, exists := s.orders[clone.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("order %s already exists", clone.ID()))
	}
	s.orders[clone.ID()] = clone
	s.sequence = append(s.sequence, clone.ID())
	return nil
}

// update replaces without locking; callers hold mu.
func (s *Store) update(clone *order.Order) error {
	if _, exists := s.orders[clone.ID()]; !exists {
		return errs.NewObjectNotFoundError("order", clone.ID().String())
	}
	s.orders[clone.ID()] = clone
	return nil
}

// remove deletes without locking; callers hold mu.
func (s *Store) remove(id kernel.UUID) error {
	if _, exists := s.orders[id]; !exists {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	delete(s.orders, id)
	for i, seqID := range s.sequence {
		if seqID.IsEqual(id) {
			s.sequence = append(s.sequence[:i], s.sequence[i+1:]...)
			break
		}
	}
	return nil
}

// cloneOrder deep-copies an aggregate through its restore constructor so the
// store and its callers never share mutable state.
func cloneOrder(o *order.Order) (*order.Order, error) {
	items := make([]*order.Item, 0, len(o.Items()))
	for _, item := range o.Items() {
		clone, err := order.RestoreItem(item.ID(), item.Name(), item.Quantity(), item.UnitPrice(), item.Packed())
		if err != nil {
			return nil, err
		}
		items = append(items, clone)
	}

	var delivery *order.DeliveryAssignment
	if d := o.Delivery(); d != nil {
		clone, err := order.NewDeliveryAssignment(d.CourierID(), d.CourierName(), d.CourierPhone(), d.AssignedAt())
		if err != nil {
			return nil, err
		}
		delivery = &clone
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 o.ID(),
		Number:             o.Number(),
		Customer:           o.Customer(),
		Items:              items,
		Status:             o.Status(),
		PaymentStatus:      o.PaymentStatus(),
		PaymentAmount:      o.PaymentAmount(),
		Timeline:           o.Timeline(),
		Delivery:           delivery,
		CancellationReason: o.CancellationReason(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	})
}
