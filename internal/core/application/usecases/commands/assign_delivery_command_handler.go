package commands

import (
	"context"
)

// AssignDeliveryCommandHandler attaches a delivery partner to a ready order
// and moves it to the assigned status in one transactional step.
type AssignDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(uowFactory OrderUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Orders that are not currently ready yield *order.InvalidTransitionError and
// remain untouched.
func (h *AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
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

	if err = aggregate.AssignDelivery(cmd.CourierID(), cmd.CourierName(), cmd.CourierPhone()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
