package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderItemsQueryHandler retrieves the line items of one order from the
// database, after verifying that the order belongs to the acting user.
type GetOrderItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderItemsQueryHandler creates a handler for order item queries.
// Requires a GORM database connection for query execution.
func NewGetOrderItemsQueryHandler(db *gorm.DB) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's items.
// Fails with ObjectNotFoundError if the order does not exist and with
// UnauthorizedError if it belongs to another user.
func (h GetOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemsQuery,
) ([]GetOrderItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var ownerID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT user_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	if ownerID != query.ActingUserID().Bytes() {
		return nil, errs.NewUnauthorizedError(
			"order", query.OrderID().String(), query.ActingUserID().String())
	}

	items := make([]GetOrderItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetOrderItemsQueryResponse
		var id, productID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&itemResp.Quantity,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ID = itemID

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ProductID = itemProductID
		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
