package queries

import (
	"context"

	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/core/domain/services"
	"sellerhub/internal/core/ports"
)

// WalletSummaryQueryHandler projects the seller's earnings from the order
// store. Only orders whose status can contribute to the wallet are loaded;
// the domain projector applies the payment and window rules.
type WalletSummaryQueryHandler struct {
	orders    ports.OrderRepository
	projector services.EarningsProjector
}

// NewWalletSummaryQueryHandler creates a handler for wallet summary queries.
func NewWalletSummaryQueryHandler(orders ports.OrderRepository) WalletSummaryQueryHandler {
	return WalletSummaryQueryHandler{
		orders:    orders,
		projector: services.NewEarningsProjector(),
	}
}

// Handle executes the query.
func (h WalletSummaryQueryHandler) Handle(
	ctx context.Context,
	query WalletSummaryQuery,
) (WalletSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return WalletSummaryQueryResponse{}, err
	}

	orders, err := h.orders.GetAllInStatuses(ctx,
		order.StatusDelivered, order.StatusAssigned, order.StatusOutForDelivery)
	if err != nil {
		return WalletSummaryQueryResponse{}, err
	}

	summary, err := h.projector.Project(orders, services.EarningsWindow{
		From: query.From(),
		To:   query.To(),
	})
	if err != nil {
		return WalletSummaryQueryResponse{}, err
	}

	return WalletSummaryQueryResponse{
		CompletedAmount: summary.Completed.Amount(),
		CompletedOrders: summary.CompletedOrders,
		PendingAmount:   summary.Pending.Amount(),
		PendingOrders:   summary.PendingOrders,
	}, nil
}
