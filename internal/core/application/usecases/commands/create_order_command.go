package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemQuantityIsInvalid = errors.New("item quantity must be greater than 0")
)

// OrderItemSpec describes one requested line item of an order: the product to
// draw from and the number of units claimed.
type OrderItemSpec struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to create a new fulfillment order
// for the acting user, with its initial item set.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, userID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created in pending status", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actingUserID kernel.UUID
	items        []OrderItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that both identifiers are valid and every item spec references a
// valid product with a positive quantity. The item set may be empty.
func NewCreateOrderCommand(
	orderID, actingUserID kernel.UUID, items []OrderItemSpec,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setActingUserID(actingUserID),
		orderCommand.setItems(items),
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

// ActingUserID returns the identifier of the user creating the order.
func (c CreateOrderCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

// Items returns the requested line item specs.
func (c CreateOrderCommand) Items() []OrderItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActingUserID(actingUserID kernel.UUID) error {
	if err := actingUserID.Validate(); err != nil {
		return err
	}

	c.actingUserID = actingUserID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemSpec) error {
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
	}

	c.items = append([]OrderItemSpec(nil), items...)
	return nil
}
