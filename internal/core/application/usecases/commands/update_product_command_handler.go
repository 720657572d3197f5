package commands

import (
	"context"

	"warehouse/internal/core/domain/services"
)

// UpdateProductCommandHandler handles product edits. The product must belong
// to the acting user; the stock quantity is overwritten with the provided
// value, independent of the ledger operations used by the order lifecycle.
type UpdateProductCommandHandler struct {
	uowFactory     ProductUoWFactory
	ownershipGuard services.OwnershipGuard
}

// NewUpdateProductCommandHandler creates a handler for product edit operations.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory:     uowFactory,
		ownershipGuard: services.NewOwnershipGuard(),
	}
}

// Handle processes the product edit command.
// Fails with UnauthorizedError if the product does not belong to the acting user.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()
	existingProduct, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = h.ownershipGuard.Authorize("product", existingProduct, cmd.ActingUserID()); err != nil {
		return err
	}

	if err = existingProduct.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = existingProduct.ChangePrice(cmd.Price()); err != nil {
		return err
	}
	if err = existingProduct.SetQuantity(cmd.Quantity()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, existingProduct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
