package commands

import (
	"context"

	"warehouse/internal/core/domain/services"
)

// DeleteProductCommandHandler handles product deletion. The product must
// belong to the acting user. Orders that reference the product keep their
// item rows; restoring stock for such orders later fails with
// ObjectNotFoundError.
type DeleteProductCommandHandler struct {
	uowFactory     ProductUoWFactory
	ownershipGuard services.OwnershipGuard
}

// NewDeleteProductCommandHandler creates a handler for product deletion operations.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory:     uowFactory,
		ownershipGuard: services.NewOwnershipGuard(),
	}
}

// Handle processes the product deletion command.
// Fails with UnauthorizedError if the product does not belong to the acting user.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	if err = productRepo.Delete(ctx, existingProduct.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
