package commands

import (
	"context"
)

// RemoveOrderCommandHandler deletes orders from storage.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for order removal.
func NewRemoveOrderCommandHandler(uowFactory OrderUoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Returns errs.ObjectNotFoundError when no such order exists.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
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

	if err := uow.OrderRepository().Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
