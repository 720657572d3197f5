package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
)

// UpdateOrderItemsCommand represents a request to replace the entire item set
// of a pending order. Items are never patched individually: the previous set
// is discarded and the requested set takes its place.
type UpdateOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actingUserID kernel.UUID
	items        []OrderItemSpec

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates a command to replace an order's items.
// Validates that both identifiers are valid and every item spec references a
// valid product with a positive quantity. An empty set clears the order.
func NewUpdateOrderItemsCommand(
	orderID, actingUserID kernel.UUID, items []OrderItemSpec,
) (UpdateOrderItemsCommand, error) {
	command := UpdateOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActingUserID(actingUserID),
		command.setItems(items),
	); err != nil {
		return UpdateOrderItemsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingUserID returns the identifier of the user editing the order.
func (c UpdateOrderItemsCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

// Items returns the replacement line item specs.
func (c UpdateOrderItemsCommand) Items() []OrderItemSpec {
	return c.items
}

func (c *UpdateOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemsCommand) setActingUserID(actingUserID kernel.UUID) error {
	if err := actingUserID.Validate(); err != nil {
		return err
	}

	c.actingUserID = actingUserID
	return nil
}

func (c *UpdateOrderItemsCommand) setItems(items []OrderItemSpec) error {
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
