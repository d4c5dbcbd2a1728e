package commands

import (
	"errors"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/pkg/guard"
)

var (
	ErrAssignDeliveryCommandIsNotConstructed = errors.New(
		"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
	)
	ErrCourierNameIsRequired  = errors.New("courier name is required")
	ErrCourierPhoneIsRequired = errors.New("courier phone is required")
)

// AssignDeliveryCommand represents a request to hand an order to a delivery
// partner. Assignment is only legal while the order is in the ready status;
// the aggregate enforces that at handle time.
//
// Example:
//
//	cmd, err := NewAssignDeliveryCommand(orderID, courierID, "Ravi", "+15550001111")
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignDeliveryCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	courierID    kernel.UUID
	courierName  string
	courierPhone string

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign a delivery partner.
// Validates identifiers and requires the courier's name and phone.
func NewAssignDeliveryCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	courierName string,
	courierPhone string,
) (AssignDeliveryCommand, error) {
	assignCommand := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setCourier(courierID, courierName, courierPhone),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDeliveryCommandIsNotConstructed if validation fails.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the delivery partner's identifier.
func (c AssignDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// CourierName returns the delivery partner's display name.
func (c AssignDeliveryCommand) CourierName() string {
	return c.courierName
}

// CourierPhone returns the delivery partner's phone number.
func (c AssignDeliveryCommand) CourierPhone() string {
	return c.courierPhone
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setCourier(courierID kernel.UUID, name, phone string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return ErrCourierNameIsRequired
	}
	if phone == "" {
		return ErrCourierPhoneIsRequired
	}

	c.courierID = courierID
	c.courierName = name
	c.courierPhone = phone
	return nil
}
