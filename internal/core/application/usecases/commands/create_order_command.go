package commands

import (
	"errors"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired   = errors.New("order number is required")
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerPhoneIsRequired = errors.New("customer phone is required")
	ErrOrderItemsAreRequired   = errors.New("at least one order item is required")
	ErrItemNameIsRequired      = errors.New("item name is required")
	ErrItemQuantityIsInvalid   = errors.New("item quantity must be greater than 0")
	ErrItemUnitPriceIsInvalid  = errors.New("item unit price must not be negative")
	ErrPaymentAmountIsInvalid  = errors.New("payment amount must not be negative")
)

// OrderItemInput carries one line item of an incoming order.
type OrderItemInput struct {
	ID        kernel.UUID
	Name      string
	Quantity  int
	UnitPrice int64
}

// CreateOrderCommand represents a request to place a new order with the
// seller. Encapsulates the customer, the line items, and the payment amount.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "ORD-1042", "Asha Patel", "+15550002222", items, 750)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	number        string
	customerName  string
	customerPhone string
	items         []OrderItemInput
	paymentAmount int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, number and customer are present,
// every line item is well formed, and amounts are not negative.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	number string,
	customerName string,
	customerPhone string,
	items []OrderItemInput,
	paymentAmount int64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setNumber(number),
		orderCommand.setCustomer(customerName, customerPhone),
		orderCommand.setItems(items),
		orderCommand.setPaymentAmount(paymentAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the human-facing order number.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// CustomerName returns the ordering customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the ordering customer's phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Items returns the order's line items.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// PaymentAmount returns the order total in minor currency units.
func (c CreateOrderCommand) PaymentAmount() int64 {
	return c.paymentAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if number == "" {
		return ErrOrderNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, phone string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerName = name
	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.ID.Validate(); err != nil {
			return err
		}
		if item.Name == "" {
			return ErrItemNameIsRequired
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
		if item.UnitPrice < 0 {
			return ErrItemUnitPriceIsInvalid
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPaymentAmount(amount int64) error {
	if amount < 0 {
		return ErrPaymentAmountIsInvalid
	}

	c.paymentAmount = amount
	return nil
}
