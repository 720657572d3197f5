package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery retrieves the line items of a single order. The order
// must belong to the acting user; reading a foreign order's items fails with
// UnauthorizedError regardless of the order's status.
type GetOrderItemsQuery struct {
	orderID      kernel.UUID
	actingUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderItemsQuery creates a query for an order's line items.
func NewGetOrderItemsQuery(orderID, actingUserID kernel.UUID) (GetOrderItemsQuery, error) {
	if err := errors.Join(orderID.Validate(), actingUserID.Validate()); err != nil {
		return GetOrderItemsQuery{}, err
	}

	return GetOrderItemsQuery{
		orderID:      orderID,
		actingUserID: actingUserID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose items to read.
func (q GetOrderItemsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActingUserID returns the identifier of the user reading the items.
func (q GetOrderItemsQuery) ActingUserID() kernel.UUID {
	return q.actingUserID
}

// GetOrderItemsQueryResponse represents one line item in the read model.
type GetOrderItemsQueryResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
}
