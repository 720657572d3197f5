// Package product provides the Product aggregate for the warehouse domain.
// A product is an item of stock owned by exactly one user; the aggregate
// carries the stock ledger with its check, decrement, and restore operations.
//
// Key business rules:
//   - Quantity is never negative; every decrement re-validates availability
//     at the moment stock leaves the warehouse
//   - Availability checks at order time are soft and do not reserve stock
//   - Restocking (on deletion of shipped or delivered orders) is unbounded
//   - Name, price, and quantity may only be edited by the owning user
package product
