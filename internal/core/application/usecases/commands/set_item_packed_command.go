package commands

import (
	"errors"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/pkg/guard"
)

var ErrSetItemPackedCommandIsNotConstructed = errors.New(
	"SetItemPackedCommand must be created via NewSetItemPackedCommand constructor",
)

// SetItemPackedCommand represents a request to flip the packed flag on one
// line item. Packing is a lightweight checklist operation: it works in any
// status, in both directions, and leaves no trace on the timeline.
type SetItemPackedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	packed  bool

	guard guard.ConstructorGuard
}

// NewSetItemPackedCommand creates a command to mark an item packed or unpacked.
func NewSetItemPackedCommand(orderID, itemID kernel.UUID, packed bool) (SetItemPackedCommand, error) {
	packedCommand := SetItemPackedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packedCommand.setOrderID(orderID),
		packedCommand.setItemID(itemID),
	); err != nil {
		return SetItemPackedCommand{}, err
	}

	packedCommand.packed = packed
	return packedCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetItemPackedCommandIsNotConstructed if validation fails.
func (c SetItemPackedCommand) Validate() error {
	return c.guard.Validate(ErrSetItemPackedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order holding the item.
func (c SetItemPackedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line item to update.
func (c SetItemPackedCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Packed returns the desired packed state.
func (c SetItemPackedCommand) Packed() bool {
	return c.packed
}

func (c *SetItemPackedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetItemPackedCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
