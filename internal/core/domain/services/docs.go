// Package services contains stateless domain services for the warehouse system.
//
// The package includes:
//   - OwnershipGuard: enforces per-user tenant isolation on owned resources
//   - StockAllocator: applies an order's stock side effects all-or-nothing
//
// Domain services coordinate behavior across aggregates without holding state
// of their own; persistence is left to the application layer's unit of work.
package services
