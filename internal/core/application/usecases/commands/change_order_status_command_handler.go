package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
//
// The pending to shipped transition is the authoritative stock decrement: the
// handler locks every referenced product row, lets the stock allocator verify
// and decrement all items atomically, and persists products and order in one
// transaction. Every other transition only rewrites the order's status.
type ChangeOrderStatusCommandHandler struct {
	uowFactory     UoWFactory
	ownershipGuard services.OwnershipGuard
	stockAllocator services.StockAllocator
}

// NewChangeOrderStatusCommandHandler creates a handler for order status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:     uowFactory,
		ownershipGuard: services.NewOwnershipGuard(),
		stockAllocator: services.NewStockAllocator(),
	}
}

// Handle processes the status transition command.
// Fails with UnauthorizedError if the order does not belong to the acting
// user, InvalidStateError if the transition is not in the transition table,
// and InsufficientStockError if shipping and any item cannot be covered. On
// any failure no stock is decremented and the order keeps its status.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = existingOrder.ChangeStatus(cmd.TargetStatus()); err != nil {
		return err
	}

	if cmd.TargetStatus() == order.Shipped {
		if err = h.shipItems(ctx, uow, existingOrder.Items()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// shipItems locks every referenced product, decrements all item quantities
// through the stock allocator, and persists the changed products. Runs within
// the surrounding transaction so the row locks are held until commit.
func (h *ChangeOrderStatusCommandHandler) shipItems(
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

	if err := h.stockAllocator.Allocate(items, products); err != nil {
		return err
	}

	for _, p := range products {
		if err := productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
