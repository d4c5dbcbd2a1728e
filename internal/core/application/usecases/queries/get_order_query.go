// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: queries never modify
// state and are free to bypass the aggregate where a flat read is cheaper.
package queries

import (
	"errors"
	"time"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full detail: line items, audit
// timeline, delivery assignment, and the transitions currently available.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemView represents one line item in a detail response.
type OrderItemView struct {
	ID        kernel.UUID
	Name      string
	Quantity  int
	UnitPrice int64
	Packed    bool
}

// TimelineEventView represents one audit log entry in a detail response.
type TimelineEventView struct {
	Status      order.Status
	Timestamp   time.Time
	Description string
	Actor       order.Actor
}

// DeliveryView represents the delivery assignment in a detail response.
type DeliveryView struct {
	CourierID    kernel.UUID
	CourierName  string
	CourierPhone string
	AssignedAt   time.Time
}

// GetOrderQueryResponse carries the full state of one order, plus the
// statuses reachable from its current status.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	Number             string
	CustomerName       string
	CustomerPhone      string
	Status             order.Status
	PaymentStatus      order.PaymentStatus
	PaymentAmount      int64
	CancellationReason string
	Items              []OrderItemView
	Timeline           []TimelineEventView
	Delivery           *DeliveryView
	AllowedTransitions []order.Status
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
