// Package ports defines repository interfaces for the warehouse domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Provides methods for storing, retrieving, and querying products together
// with their stock quantities.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate,
	// including stock quantity changes from the ledger operations.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product aggregate and locks its row for the
	// duration of the surrounding transaction. Used by operations that
	// check-then-decrement stock so that concurrent decrements against the
	// same product are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByOwner retrieves all products owned by the given user.
	GetAllByOwner(ctx context.Context, ownerUserID kernel.UUID) ([]*product.Product, error)

	// Delete removes the product with the given identifier from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
