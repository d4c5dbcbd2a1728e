package commands

import (
	"context"
)

// TransitionOrderCommandHandler moves an order through its lifecycle.
// Loads the aggregate, asks it to transition, and persists the result.
// Illegal transitions surface as *order.InvalidTransitionError without
// modifying the stored order.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// The read, the transition check, and the write all happen within one
// transaction so concurrent commands observe fully applied changes only.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	if err = aggregate.Transition(cmd.Target(), cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
