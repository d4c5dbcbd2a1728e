package queries

import (
	"context"

	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/core/ports"
)

// GetOrderQueryHandler serves single-order detail reads through the
// repository, so the same query works against both the in-memory store and
// postgres.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return orderToResponse(aggregate), nil
}

func orderToResponse(aggregate *order.Order) GetOrderQueryResponse {
	items := make([]OrderItemView, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemView{
			ID:        item.ID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
			Packed:    item.Packed(),
		})
	}

	timeline := make([]TimelineEventView, 0, len(aggregate.Timeline()))
	for _, event := range aggregate.Timeline() {
		timeline = append(timeline, TimelineEventView{
			Status:      event.Status,
			Timestamp:   event.Timestamp,
			Description: event.Description,
			Actor:       event.Actor,
		})
	}

	var delivery *DeliveryView
	if assignment := aggregate.Delivery(); assignment != nil {
		delivery = &DeliveryView{
			CourierID:    assignment.CourierID(),
			CourierName:  assignment.CourierName(),
			CourierPhone: assignment.CourierPhone(),
			AssignedAt:   assignment.AssignedAt(),
		}
	}

	return GetOrderQueryResponse{
		ID:                 aggregate.ID(),
		Number:             aggregate.Number(),
		CustomerName:       aggregate.Customer().Name(),
		CustomerPhone:      aggregate.Customer().Phone(),
		Status:             aggregate.Status(),
		PaymentStatus:      aggregate.PaymentStatus(),
		PaymentAmount:      aggregate.PaymentAmount().Amount(),
		CancellationReason: aggregate.CancellationReason(),
		Items:              items,
		Timeline:           timeline,
		Delivery:           delivery,
		AllowedTransitions: aggregate.AllowedTransitions(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}
