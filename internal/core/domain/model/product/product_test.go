package product_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()
	validOwner := kernel.NewUUID()

	t.Run("should create valid product with all valid parameters", func(t *testing.T) {
		p, err := product.NewProduct(validID, validOwner, "Widget", 9.99, 10)

		require.NoError(t, err)
		assert.NotNil(t, p)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.True(t, p.OwnerID().IsEqual(validOwner))
		assert.Equal(t, "Widget", p.Name())
		assert.InEpsilon(t, 9.99, p.Price(), 1e-9)
		assert.Equal(t, 10, p.Quantity())
	})

	t.Run("should accept zero price and zero quantity", func(t *testing.T) {
		p, err := product.NewProduct(validID, validOwner, "Free sample", 0, 0)

		require.NoError(t, err)
		assert.Zero(t, p.Price())
		assert.Zero(t, p.Quantity())
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, validOwner, "Widget", 1, 1)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid owner", func(t *testing.T) {
		var invalidOwner kernel.UUID

		p, err := product.NewProduct(validID, invalidOwner, "Widget", 1, 1)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := product.NewProduct(validID, validOwner, "", 1, 1)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		p, err := product.NewProduct(validID, validOwner, "Widget", -0.01, 1)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		p, err := product.NewProduct(validID, validOwner, "Widget", 1, -1)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, validOwner, "", -1, -1)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "product name")
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should fail validation for nil product", func(t *testing.T) {
		var p *product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})

	t.Run("should fail validation for zero-value product", func(t *testing.T) {
		p := &product.Product{}

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestProduct_CheckAvailable(t *testing.T) {
	newProduct := func(quantity int) *product.Product {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Widget", 2.5, quantity)
		require.NoError(t, err)
		return p
	}

	t.Run("should pass when requested equals available", func(t *testing.T) {
		p := newProduct(5)

		require.NoError(t, p.CheckAvailable(5))
		assert.Equal(t, 5, p.Quantity(), "soft check must not mutate stock")
	})

	t.Run("should pass when requested is below available", func(t *testing.T) {
		p := newProduct(5)

		require.NoError(t, p.CheckAvailable(1))
	})

	t.Run("should fail when requested exceeds available", func(t *testing.T) {
		p := newProduct(3)

		err := p.CheckAvailable(5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Widget", stockErr.ProductName)
		assert.Equal(t, 5, stockErr.Requested)
		assert.Equal(t, 3, stockErr.Available)
	})

	t.Run("should reject non-positive requested quantities", func(t *testing.T) {
		p := newProduct(3)

		require.Error(t, p.CheckAvailable(0))
		require.Error(t, p.CheckAvailable(-2))
	})
}

func TestProduct_DecrementStock(t *testing.T) {
	newProduct := func(quantity int) *product.Product {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Widget", 2.5, quantity)
		require.NoError(t, err)
		return p
	}

	t.Run("should subtract exactly the given amount", func(t *testing.T) {
		p := newProduct(10)

		require.NoError(t, p.DecrementStock(4))

		assert.Equal(t, 6, p.Quantity())
	})

	t.Run("should allow draining stock to zero", func(t *testing.T) {
		p := newProduct(4)

		require.NoError(t, p.DecrementStock(4))

		assert.Zero(t, p.Quantity())
	})

	t.Run("should fail and leave stock untouched when amount exceeds available", func(t *testing.T) {
		p := newProduct(3)

		err := p.DecrementStock(5)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 3, p.Quantity())
	})

	t.Run("should never drive quantity negative across a sequence", func(t *testing.T) {
		p := newProduct(5)

		require.NoError(t, p.DecrementStock(3))
		require.Error(t, p.DecrementStock(3))
		require.NoError(t, p.DecrementStock(2))
		require.Error(t, p.DecrementStock(1))

		assert.GreaterOrEqual(t, p.Quantity(), 0)
	})
}

func TestProduct_IncrementStock(t *testing.T) {
	t.Run("should add the given amount back", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Widget", 2.5, 6)
		require.NoError(t, err)

		require.NoError(t, p.IncrementStock(4))

		assert.Equal(t, 10, p.Quantity())
	})

	t.Run("should reject non-positive restock amounts", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Widget", 2.5, 6)
		require.NoError(t, err)

		require.Error(t, p.IncrementStock(0))
		require.Error(t, p.IncrementStock(-1))
		assert.Equal(t, 6, p.Quantity())
	})
}

func TestProduct_OwnerEdits(t *testing.T) {
	newProduct := func() *product.Product {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Widget", 2.5, 6)
		require.NoError(t, err)
		return p
	}

	t.Run("should rename", func(t *testing.T) {
		p := newProduct()

		require.NoError(t, p.Rename("Gadget"))
		assert.Equal(t, "Gadget", p.Name())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		p := newProduct()

		require.Error(t, p.Rename(""))
		assert.Equal(t, "Widget", p.Name())
	})

	t.Run("should change price", func(t *testing.T) {
		p := newProduct()

		require.NoError(t, p.ChangePrice(3.75))
		assert.InEpsilon(t, 3.75, p.Price(), 1e-9)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		p := newProduct()

		require.Error(t, p.ChangePrice(-1))
	})

	t.Run("should overwrite quantity", func(t *testing.T) {
		p := newProduct()

		require.NoError(t, p.SetQuantity(0))
		assert.Zero(t, p.Quantity())
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		p := newProduct()

		require.Error(t, p.SetQuantity(-5))
		assert.Equal(t, 6, p.Quantity())
	})
}
