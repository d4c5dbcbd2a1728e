package kernel

import (
	"fmt"
	"math"

	"sellerhub/internal/pkg/errs"
	"sellerhub/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created via the NewMoney constructor to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents a monetary amount in minor currency units (paise, cents).
// It is an immutable value object: amounts are always non-negative and
// arithmetic produces new instances. The zero value is invalid and will fail
// validation - use NewMoney to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(24900) // 249.00
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price) // Output: 249.00
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor currency units.
// The amount must be non-negative.
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if amount is negative
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(math.MaxInt64))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Money was properly constructed using NewMoney.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two monetary amounts as a new Money value.
// Returns an error if the other amount was not properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount + other.amount)
}

// IsEqual compares two monetary amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted with two decimal places.
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
