package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
)

// DeleteOrderCommandHandler handles order deletion.
//
// Orders whose stock already left the ledger (shipped or delivered) restore
// every item's quantity before the order row disappears; pending and
// cancelled orders never decremented stock, so they are simply removed.
// Restock fails with ObjectNotFoundError if a referenced product has been
// deleted in the meantime, and the order is kept.
type DeleteOrderCommandHandler struct {
	uowFactory     UoWFactory
	ownershipGuard services.OwnershipGuard
	stockAllocator services.StockAllocator
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory:     uowFactory,
		ownershipGuard: services.NewOwnershipGuard(),
		stockAllocator: services.NewStockAllocator(),
	}
}

// Handle processes the order deletion command.
// Fails with UnauthorizedError if the order does not belong to the acting
// user. Restock and row removal happen in one transaction.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.ownershipGuard.Authorize("order", existingOrder, cmd.ActingUserID()); err != nil {
		return err
	}

	if existingOrder.RequiresStockRestore() {
		if err = h.restoreStock(ctx, uow, existingOrder.Items()); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, existingOrder.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// restoreStock locks every referenced product, adds every item's quantity
// back to the ledger, and persists the changed products.
func (h *DeleteOrderCommandHandler) restoreStock(
	ctx context.Context, uow UoW, items []order.Item,
) error {
	productRepo := uow.ProductRepository()

	products := make(map[kernel.UUID]*product.Product, len(items))
	for _, item := range items {
		if _, ok := products[item.ProductID()]; ok {
			continue
		}

		p, err := productRepo.GetForUpdate(ctx, item.ProductID())
		if err != nil {
			return err
		}
		products[item.ProductID()] = p
	}

	if err := h.stockAllocator.Release(items, products); err != nil {
		return err
	}

	for _, p := range products {
		if err := productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
