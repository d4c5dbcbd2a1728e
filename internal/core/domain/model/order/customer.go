package order

import (
	"sellerhub/internal/pkg/errs"
	"sellerhub/internal/pkg/guard"
)

// Domain errors for customer construction.
var (
	// ErrCustomerNameIsRequired is returned when creating a customer without a name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrCustomerPhoneIsRequired is returned when creating a customer without a phone number.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customer phone")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
		"customer must be created via NewCustomer constructor")
)

// Customer identifies who placed an order. It is an immutable value object;
// the phone number doubles as the stable customer key for analytics.
type Customer struct {
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer value. Both name and phone are required.
func NewCustomer(name, phone string) (Customer, error) {
	if name == "" {
		return Customer{}, ErrCustomerNameIsRequired
	}
	if phone == "" {
		return Customer{}, ErrCustomerPhoneIsRequired
	}

	return Customer{
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact number. It serves as the customer key
// in per-customer aggregations.
func (c Customer) Phone() string {
	return c.phone
}
