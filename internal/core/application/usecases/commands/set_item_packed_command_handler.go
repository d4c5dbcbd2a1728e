package commands

import (
	"context"
)

// SetItemPackedCommandHandler flips the packed flag on a single line item.
type SetItemPackedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetItemPackedCommandHandler creates a handler for item packing updates.
func NewSetItemPackedCommandHandler(uowFactory OrderUoWFactory) SetItemPackedCommandHandler {
	return SetItemPackedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the packing command.
// Returns errs.ObjectNotFoundError when the order or the item is unknown.
func (h *SetItemPackedCommandHandler) Handle(ctx context.Context, cmd SetItemPackedCommand) error {
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

	if err = aggregate.SetItemPacked(cmd.ItemID(), cmd.Packed()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
