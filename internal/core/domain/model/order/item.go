package order

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of an order: a reservation-free claim on a quantity of
// a single product. An item does not hold stock; the product's ledger is only
// decremented when the order ships.
//
// Item is a value object: immutable after construction and compared by ID.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int

	isConstructed bool
}

// NewItem creates a new order line item with validation.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - productID: The referenced product's identifier (must be valid UUID)
//   - quantity: Number of units claimed (must be positive)
func NewItem(id, productID kernel.UUID, quantity int) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the referenced product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units claimed by the item.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
