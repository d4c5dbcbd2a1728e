package order

import (
	"errors"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/pkg/errs"
	"sellerhub/internal/pkg/guard"
)

// Domain errors for line item construction.
var (
	// ErrItemNameIsRequired is returned when creating an item without a name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one line in an order: a product, a quantity, and a unit price.
// The packed flag tracks whether the seller has packed this line while
// preparing the order. Items are mutated only through the owning Order.
type Item struct {
	id        kernel.UUID
	name      string
	quantity  int
	unitPrice kernel.Money
	packed    bool
	guard     guard.ConstructorGuard
}

// NewItem creates a line item with the packed flag cleared.
//
// Parameters:
//   - id: Unique identifier for the line item (must be a valid UUID)
//   - name: Product name (must be non-empty)
//   - quantity: Number of units (must be positive)
//   - unitPrice: Price per unit
//
// Returns the item, or a validation error if any parameter is invalid.
func NewItem(id kernel.UUID, name string, quantity int, unitPrice kernel.Money) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrItemNameIsRequired
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("quantity must be greater than 0"))
	}
	if err := unitPrice.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		id:        id,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs a line item from persistence, including its packed
// flag. It applies the same validation as NewItem.
func RestoreItem(id kernel.UUID, name string, quantity int, unitPrice kernel.Money, packed bool) (*Item, error) {
	item, err := NewItem(id, name, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	item.packed = packed
	return item, nil
}

// Validate ensures the Item was created through NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the product name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Packed reports whether the seller has packed this line.
func (i *Item) Packed() bool {
	return i.packed
}

// setPacked updates the packed flag. Only the owning Order calls this.
func (i *Item) setPacked(packed bool) {
	i.packed = packed
}
