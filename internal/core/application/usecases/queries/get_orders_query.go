package queries

import (
	"errors"
	"time"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves order summaries, optionally filtered to a set of
// fulfillment statuses. An empty status set means all orders.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(order.StatusNew, order.StatusAccepted)
//	handler := NewGetOrdersQueryHandler(db)
//	summaries, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for order summaries.
// Every given status must be a defined value.
func NewGetOrdersQuery(statuses ...order.Status) (GetOrdersQuery, error) {
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Statuses returns the status filter; empty means no filter.
func (q GetOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// GetOrdersQueryResponse represents one order summary row.
type GetOrdersQueryResponse struct {
	ID            kernel.UUID
	Number        string
	CustomerName  string
	CustomerPhone string
	Status        order.Status
	PaymentStatus order.PaymentStatus
	PaymentAmount int64
	ItemCount     int
	CreatedAt     time.Time
}
