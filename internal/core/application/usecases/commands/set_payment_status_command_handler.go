package commands

import (
	"context"
)

// SetPaymentStatusCommandHandler records payment state changes on an order.
type SetPaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetPaymentStatusCommandHandler creates a handler for payment updates.
func NewSetPaymentStatusCommandHandler(uowFactory OrderUoWFactory) SetPaymentStatusCommandHandler {
	return SetPaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment status command.
func (h *SetPaymentStatusCommandHandler) Handle(ctx context.Context, cmd SetPaymentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetPaymentStatus(cmd.PaymentStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
