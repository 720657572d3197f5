// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
//
// Every query is scoped to the acting user: results only ever contain rows
// the user owns, and item reads on foreign orders fail outright.
package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the acting user's product catalog together with
// current stock quantities.
//
// Example:
//
//	query, err := NewGetProductsQuery(userID)
//	if err != nil {
//	    return err
//	}
//
//	products, err := NewGetProductsQueryHandler(db).Handle(ctx, query)
//	for _, p := range products {
//	    fmt.Printf("%s: %d in stock\n", p.Name, p.Quantity)
//	}
type GetProductsQuery struct {
	ownerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query for the given user's products.
func NewGetProductsQuery(ownerUserID kernel.UUID) (GetProductsQuery, error) {
	if err := ownerUserID.Validate(); err != nil {
		return GetProductsQuery{}, err
	}

	return GetProductsQuery{
		ownerUserID: ownerUserID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// OwnerUserID returns the identifier of the user whose products to list.
func (q GetProductsQuery) OwnerUserID() kernel.UUID {
	return q.ownerUserID
}

// GetProductsQueryResponse represents one product in the read model.
type GetProductsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Price    float64
	Quantity int
}
