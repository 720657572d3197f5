package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to overwrite a product's name,
// price, and stock quantity with owner-provided values.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	actingUserID kernel.UUID
	name         string
	price        float64
	quantity     int

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit a product.
// Validates that both identifiers are valid, the name is not empty, and price
// and quantity are not negative.
func NewUpdateProductCommand(
	productID, actingUserID kernel.UUID, name string, price float64, quantity int,
) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setActingUserID(actingUserID),
		command.setName(name),
		command.setPrice(price),
		command.setQuantity(quantity),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to edit.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// ActingUserID returns the identifier of the user editing the product.
func (c UpdateProductCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Price returns the new unit price.
func (c UpdateProductCommand) Price() float64 {
	return c.price
}

// Quantity returns the new stock quantity.
func (c UpdateProductCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setActingUserID(actingUserID kernel.UUID) error {
	if err := actingUserID.Validate(); err != nil {
		return err
	}

	c.actingUserID = actingUserID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrProductPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrProductQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
