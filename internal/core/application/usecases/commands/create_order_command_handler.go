package commands

import (
	"context"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// New orders start in the "new" status with payment pending, and their
// timeline opens with a creation event.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, "ORD-1042", "Asha Patel", "+15550002222", items, 750)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Builds the order aggregate from the command's line items and persists it
// within a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		unitPrice, err := kernel.NewMoney(input.UnitPrice)
		if err != nil {
			return err
		}

		item, err := order.NewItem(input.ID, input.Name, input.Quantity, unitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	customer, err := order.NewCustomer(cmd.CustomerName(), cmd.CustomerPhone())
	if err != nil {
		return err
	}

	paymentAmount, err := kernel.NewMoney(cmd.PaymentAmount())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Number(), customer, items, paymentAmount)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
