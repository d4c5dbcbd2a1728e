package commands

import (
	"errors"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/pkg/guard"
)

var ErrSetPaymentStatusCommandIsNotConstructed = errors.New(
	"SetPaymentStatusCommand must be created via NewSetPaymentStatusCommand constructor",
)

// SetPaymentStatusCommand represents a payment state change reported for an
// order, typically relayed from a payment provider callback. Payment status
// is orthogonal to the fulfillment lifecycle.
type SetPaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewSetPaymentStatusCommand creates a command to record a payment status.
func NewSetPaymentStatusCommand(
	orderID kernel.UUID,
	paymentStatus order.PaymentStatus,
) (SetPaymentStatusCommand, error) {
	paymentCommand := SetPaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setPaymentStatus(paymentStatus),
	); err != nil {
		return SetPaymentStatusCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetPaymentStatusCommandIsNotConstructed if validation fails.
func (c SetPaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetPaymentStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c SetPaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the reported payment status.
func (c SetPaymentStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

func (c *SetPaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetPaymentStatusCommand) setPaymentStatus(paymentStatus order.PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}

	c.paymentStatus = paymentStatus
	return nil
}
