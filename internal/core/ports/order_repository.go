package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is persisted together with its line items as a single aggregate:
// loading an order always yields its complete item set, and updating an order
// rewrites the item set wholesale.
type OrderRepository interface {
	// Add persists a new order aggregate, including its items, to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The stored item set is replaced by the aggregate's current items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its complete item set.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByOwner retrieves all orders owned by the given user.
	GetAllByOwner(ctx context.Context, ownerUserID kernel.UUID) ([]*order.Order, error)

	// Delete removes the order and all of its items from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
