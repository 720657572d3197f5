package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates new orders in pending status after validating that every requested
// product belongs to the acting user and currently has sufficient stock.
//
// The availability check at creation is soft: no stock is reserved, the
// authoritative decrement happens when the order ships.
type CreateOrderCommandHandler struct {
	uowFactory     UoWFactory
	ownershipGuard services.OwnershipGuard
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence across products and orders.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		ownershipGuard: services.NewOwnershipGuard(),
	}
}

// Handle processes the order creation command.
// Every referenced product is loaded, checked for ownership and availability,
// and converted into a line item; the order is then persisted in pending
// status. Any failure rolls the whole operation back.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.ActingUserID(), time.Now())
	if err != nil {
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

	if err = newOrder.ReplaceItems(items); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
