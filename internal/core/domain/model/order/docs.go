// Package order provides domain entities and business logic for order
// management in the warehouse system. It implements the Order aggregate root
// with lifecycle management, its line items, and the status state machine.
//
// The package includes:
//   - Order: The aggregate root managing identity, ownership, items, and lifecycle
//   - Item: A reservation-free line item claiming a quantity of one product
//   - Status: A state machine enforcing the fulfillment workflow
//
// Key business rules:
//   - Orders are created Pending and owned by exactly one user
//   - Status follows the table: Pending -> Shipped/Cancelled, Shipped -> Delivered;
//     Delivered and Cancelled are terminal
//   - The item set is replaced wholesale and only while the order is Pending
//   - Items reserve no stock; product quantities change only at the
//     Pending -> Shipped transition and on deletion of shipped/delivered orders
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
