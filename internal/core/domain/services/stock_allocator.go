package services

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

// StockAllocator is a domain service that applies an order's stock side
// effects to the product ledger, all-or-nothing.
//
// At ship time every item's product must have sufficient stock at the moment
// of the decrement; availability checks done when the order was created are
// soft and may be stale. The allocator therefore verifies every item first
// and only then decrements, so a failure on any item leaves every product
// untouched.
//
// Key responsibilities:
//   - Validating that every item's product is present and sufficiently stocked
//   - Decrementing each product by exactly its item's quantity, once
//   - Restoring stock for every item when a shipped/delivered order is deleted
//
// Example usage:
//
//	allocator := services.NewStockAllocator()
//	if err := allocator.Allocate(ord.Items(), products); err != nil {
//	    // no product was mutated
//	    return err
//	}
//	// every product was decremented; persist them
type StockAllocator struct{}

// NewStockAllocator creates a new StockAllocator instance.
func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

// Allocate decrements stock for every item, or for none.
//
// Parameters:
//   - items: The order's line items
//   - products: The referenced products keyed by their identifier
//
// The verification pass runs before any decrement: if any product is missing
// from the map or has insufficient stock, Allocate fails (ObjectNotFoundError
// or InsufficientStockError) and no product is mutated. Items referencing the
// same product are verified against their combined quantity. On success every
// product's quantity drops by exactly the corresponding item quantity.
func (a StockAllocator) Allocate(items []order.Item, products map[kernel.UUID]*product.Product) error {
	// Verify everything up front so a late failure cannot leave a partial
	// decrement. Quantities accumulate per product so duplicate items cannot
	// each pass a check their sum would fail.
	requested := make(map[kernel.UUID]int, len(items))
	for _, item := range items {
		p, ok := products[item.ProductID()]
		if !ok {
			return errs.NewObjectNotFoundError("productId", item.ProductID().String())
		}

		requested[item.ProductID()] += item.Quantity()
		if err := p.CheckAvailable(requested[item.ProductID()]); err != nil {
			return err
		}
	}

	for _, item := range items {
		if err := products[item.ProductID()].DecrementStock(item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

// Release restores stock for every item, adding back exactly the quantity the
// item had reserved. Used when a shipped or delivered order is deleted.
//
// Fails with ObjectNotFoundError if any item's product is missing from the
// map; products processed before the failure are not rolled back by the
// allocator, so callers must run Release inside a transaction.
func (a StockAllocator) Release(items []order.Item, products map[kernel.UUID]*product.Product) error {
	for _, item := range items {
		p, ok := products[item.ProductID()]
		if !ok {
			return errs.NewObjectNotFoundError("productId", item.ProductID().String())
		}

		if err := p.IncrementStock(item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}
