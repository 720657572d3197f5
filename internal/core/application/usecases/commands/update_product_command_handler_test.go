package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	productID := kernel.NewUUID()

	ownedProduct, err := product.NewProduct(productID, userID, "widget", 9.99, 10)
	require.NoError(t, err)

	cmd, _ := commands.NewUpdateProductCommand(productID, userID, "gadget", 19.99, 3)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, productID).Return(ownedProduct, nil).Once(),
		repo.On("Update", mock.Anything, ownedProduct).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, "gadget", ownedProduct.Name())
	require.InDelta(t, 19.99, ownedProduct.Price(), 0.001)
	require.Equal(t, 3, ownedProduct.Quantity())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_ForeignProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()

	foreignProduct, err := product.NewProduct(productID, kernel.NewUUID(), "widget", 9.99, 10)
	require.NoError(t, err)

	cmd, _ := commands.NewUpdateProductCommand(productID, kernel.NewUUID(), "gadget", 19.99, 3)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, productID).Return(foreignProduct, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	// untouched on failure
	require.Equal(t, "widget", foreignProduct.Name())
	uow.AssertExpectations(t)
}
