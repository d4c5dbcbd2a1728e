package commands

import (
	"errors"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents an administrative request to delete an order
// outright. Removal bypasses the lifecycle state machine: any order can be
// removed regardless of status, and no timeline event is written because the
// whole record disappears.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to delete an order.
func NewRemoveOrderCommand(orderID kernel.UUID) (RemoveOrderCommand, error) {
	removeCommand := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveOrderCommandIsNotConstructed if validation fails.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
