// Package kernel provides shared value objects used across the warehouse domain.
// It contains the building blocks that all aggregates depend on, most notably
// the UUID value object used to identify users, products, and orders.
//
// Value objects in this package are immutable, validated at construction, and
// safe for concurrent use.
package kernel
