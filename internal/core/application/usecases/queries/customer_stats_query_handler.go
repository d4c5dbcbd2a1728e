package queries

import (
	"context"

	"sellerhub/internal/core/domain/services"
	"sellerhub/internal/core/ports"
)

// CustomerStatsQueryHandler derives customer analytics from the order store.
type CustomerStatsQueryHandler struct {
	orders    ports.OrderRepository
	analytics services.CustomerAnalytics
}

// NewCustomerStatsQueryHandler creates a handler for customer analytics queries.
func NewCustomerStatsQueryHandler(orders ports.OrderRepository) CustomerStatsQueryHandler {
	return CustomerStatsQueryHandler{
		orders:    orders,
		analytics: services.NewCustomerAnalytics(),
	}
}

// Handle executes the query.
func (h CustomerStatsQueryHandler) Handle(
	ctx context.Context,
	query CustomerStatsQuery,
) ([]CustomerStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := h.analytics.Aggregate(orders)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerStatsQueryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, CustomerStatsQueryResponse{
			Name:         summary.Name,
			Phone:        summary.Phone,
			Orders:       summary.Orders,
			Items:        summary.Items,
			TotalSpend:   summary.TotalSpend.Amount(),
			FirstOrderAt: summary.FirstOrderAt,
			LastOrderAt:  summary.LastOrderAt,
		})
	}

	return responses, nil
}
