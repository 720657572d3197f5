package product

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created through
	// the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")
)

// Product represents an item of stock owned by a single user. It is the aggregate
// root that carries the stock ledger: the available quantity and the operations
// that check, decrement, and restore it.
//
// Product maintains these invariants:
//   - Must have a valid unique identifier and a valid owner
//   - Name must not be empty
//   - Price must be non-negative
//   - Quantity must be non-negative at all times; every decrement re-validates
//     availability at the moment stock actually leaves the warehouse
//
// Availability checks (CheckAvailable) are deliberately soft: they do not
// reserve stock. Stock only leaves the ledger through DecrementStock, which
// re-validates against the current quantity. This two-phase split mirrors the
// order lifecycle, where creating an order validates availability and shipping
// it performs the authoritative decrement.
type Product struct {
	id          kernel.UUID
	ownerUserID kernel.UUID
	name        string
	price       float64
	quantity    int

	isConstructed bool
}

// NewProduct creates a new Product instance with validation. This is the only way
// (besides RestoreProduct) to obtain a valid Product.
//
// Parameters:
//   - id: Unique identifier for the product (must be valid UUID)
//   - ownerUserID: The owning user's identifier (must be valid UUID)
//   - name: Product name (must not be empty)
//   - price: Unit price (must be non-negative)
//   - quantity: Initial stock quantity (must be non-negative)
//
// Returns the created product, or a validation error if any parameter is invalid.
func NewProduct(id, ownerUserID kernel.UUID, name string, price float64, quantity int) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setOwnerUserID(ownerUserID),
		product.setName(name),
		product.setPrice(price),
		product.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persisted state.
// It applies the same validation as NewProduct and is intended for use by
// repository implementations only.
func RestoreProduct(id, ownerUserID kernel.UUID, name string, price float64, quantity int) (*Product, error) {
	return NewProduct(id, ownerUserID, name, price, quantity)
}

// Validate ensures the Product instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// OwnerID returns the identifier of the user who owns the product.
func (p *Product) OwnerID() kernel.UUID {
	return p.ownerUserID
}

// Name returns the product's name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Quantity returns the currently available stock quantity.
func (p *Product) Quantity() int {
	return p.quantity
}

// CheckAvailable verifies that the requested quantity can be satisfied by the
// currently available stock, without mutating the ledger.
//
// This is a soft check: it does not reserve stock, so availability may change
// between the check and a later decrement. Callers that actually remove stock
// must use DecrementStock, which re-validates.
//
// Returns nil if quantity >= requested, otherwise an InsufficientStockError.
func (p *Product) CheckAvailable(requested int) error {
	if requested <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requested quantity",
			fmt.Errorf("%d is not greater than 0", requested))
	}

	if p.quantity < requested {
		return errs.NewInsufficientStockError(p.name, requested, p.quantity)
	}

	return nil
}

// DecrementStock removes the given amount from the available stock.
//
// Availability is re-validated at the moment of the decrement, because stock
// may have changed since any earlier soft check. On success the quantity is
// reduced by exactly amount; on failure the ledger is left untouched.
//
// Returns an InsufficientStockError if quantity < amount.
func (p *Product) DecrementStock(amount int) error {
	if err := p.CheckAvailable(amount); err != nil {
		return err
	}

	p.quantity -= amount
	return nil
}

// IncrementStock adds the given amount back to the available stock.
// Used to restore stock when a shipped or delivered order is deleted.
// There is no upper bound on restock.
func (p *Product) IncrementStock(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restock amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	p.quantity += amount
	return nil
}

// Rename changes the product's name. The new name must not be empty.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangePrice changes the product's unit price. The new price must be non-negative.
func (p *Product) ChangePrice(price float64) error {
	return p.setPrice(price)
}

// SetQuantity overwrites the available stock quantity with an owner-provided
// value. The new quantity must be non-negative.
func (p *Product) SetQuantity(quantity int) error {
	return p.setQuantity(quantity)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setOwnerUserID(ownerUserID kernel.UUID) error {
	if err := ownerUserID.Validate(); err != nil {
		return err
	}
	p.ownerUserID = ownerUserID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}
