package ports

import (
	"context"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its internal identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, oldest first.
	// Used by the wallet and customer analytics projections.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatuses retrieves all orders whose fulfillment status is in
	// the given set, oldest first.
	GetAllInStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)

	// Remove deletes an order. This is an administrative cleanup operation
	// that bypasses the lifecycle state machine entirely.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Remove(ctx context.Context, id kernel.UUID) error
}
