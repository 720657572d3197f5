package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired    = errors.New("product name is required")
	ErrProductPriceIsInvalid    = errors.New("product price must not be negative")
	ErrProductQuantityIsInvalid = errors.New("product quantity must not be negative")
)

// CreateProductCommand represents a request to register a new product in the
// acting user's catalog, together with its initial stock quantity.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	actingUserID kernel.UUID
	name         string
	price        float64
	quantity     int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Validates that both identifiers are valid, the name is not empty, and price
// and quantity are not negative.
func NewCreateProductCommand(
	productID, actingUserID kernel.UUID, name string, price float64, quantity int,
) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setActingUserID(actingUserID),
		command.setName(name),
		command.setPrice(price),
		command.setQuantity(quantity),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// ActingUserID returns the identifier of the user creating the product.
func (c CreateProductCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product unit price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// Quantity returns the initial stock quantity.
func (c CreateProductCommand) Quantity() int {
	return c.quantity
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setActingUserID(actingUserID kernel.UUID) error {
	if err := actingUserID.Validate(); err != nil {
		return err
	}

	c.actingUserID = actingUserID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrProductPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrProductQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
