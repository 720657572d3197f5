package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the acting user's orders with their lifecycle
// status. Line items are fetched separately through GetOrderItemsQuery.
type GetOrdersQuery struct {
	ownerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the given user's orders.
func NewGetOrdersQuery(ownerUserID kernel.UUID) (GetOrdersQuery, error) {
	if err := ownerUserID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		ownerUserID: ownerUserID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OwnerUserID returns the identifier of the user whose orders to list.
func (q GetOrdersQuery) OwnerUserID() kernel.UUID {
	return q.ownerUserID
}

// GetOrdersQueryResponse represents one order in the read model.
// Status carries the canonical token ("PENDING", "SHIPPED", "DELIVERED",
// "CANCELLED").
type GetOrdersQueryResponse struct {
	ID        kernel.UUID
	OrderDate time.Time
	Status    string
}
