package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
)

// UpdateOrderItemsCommandHandler handles wholesale replacement of a pending
// order's item set. The order must belong to the acting user and still be
// pending; every replacement product is checked for ownership and soft
// availability, exactly as at order creation.
type UpdateOrderItemsCommandHandler struct {
	uowFactory     UoWFactory
	ownershipGuard services.OwnershipGuard
}

// NewUpdateOrderItemsCommandHandler creates a handler for order item replacement.
func NewUpdateOrderItemsCommandHandler(uowFactory UoWFactory) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory:     uowFactory,
		ownershipGuard: services.NewOwnershipGuard(),
	}
}

// Handle processes the item replacement command.
// Fails with UnauthorizedError if the order or any referenced product does not
// belong to the acting user, and with InvalidStateError if the order is no
// longer pending. Any failure rolls the whole operation back.
func (h *UpdateOrderItemsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemsCommand) error {
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

	productRepo := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		p, specErr := productRepo.Get(ctx, spec.ProductID)
		if specErr != nil {
			return specErr
		}

		if specErr = h.ownershipGuard.Authorize("product", p, cmd.ActingUserID()); specErr != nil {
			return specErr
		}

		if specErr = p.CheckAvailable(spec.Quantity); specErr != nil {
			return specErr
		}

		item, specErr := order.NewItem(kernel.NewUUID(), spec.ProductID, spec.Quantity)
		if specErr != nil {
			return specErr
		}
		items = append(items, item)
	}

	if err = existingOrder.ReplaceItems(items); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
