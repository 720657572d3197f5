package services_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, name string, quantity int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), name, 1.0, quantity)
	require.NoError(t, err)
	return p
}

func newTestItem(t *testing.T, productID kernel.UUID, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), productID, quantity)
	require.NoError(t, err)
	return item
}

func TestStockAllocator_Allocate(t *testing.T) {
	allocator := services.NewStockAllocator()

	t.Run("should decrement every product by exactly its item quantity", func(t *testing.T) {
		p1 := newTestProduct(t, "Widget", 10)
		p2 := newTestProduct(t, "Gadget", 7)
		products := map[kernel.UUID]*product.Product{
			p1.ID(): p1,
			p2.ID(): p2,
		}
		items := []order.Item{
			newTestItem(t, p1.ID(), 4),
			newTestItem(t, p2.ID(), 7),
		}

		err := allocator.Allocate(items, products)

		require.NoError(t, err)
		assert.Equal(t, 6, p1.Quantity())
		assert.Zero(t, p2.Quantity())
	})

	t.Run("should mutate nothing when any item has insufficient stock", func(t *testing.T) {
		p1 := newTestProduct(t, "Widget", 10)
		p2 := newTestProduct(t, "Gadget", 2)
		products := map[kernel.UUID]*product.Product{
			p1.ID(): p1,
			p2.ID(): p2,
		}
		items := []order.Item{
			newTestItem(t, p1.ID(), 4),
			newTestItem(t, p2.ID(), 3), // more than available
		}

		err := allocator.Allocate(items, products)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 10, p1.Quantity(), "first product must remain unchanged")
		assert.Equal(t, 2, p2.Quantity())
	})

	t.Run("should fail when a product is missing", func(t *testing.T) {
		p1 := newTestProduct(t, "Widget", 10)
		products := map[kernel.UUID]*product.Product{
			p1.ID(): p1,
		}
		items := []order.Item{
			newTestItem(t, p1.ID(), 4),
			newTestItem(t, kernel.NewUUID(), 1),
		}

		err := allocator.Allocate(items, products)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, 10, p1.Quantity())
	})

	t.Run("should handle multiple items against the same product", func(t *testing.T) {
		p1 := newTestProduct(t, "Widget", 5)
		products := map[kernel.UUID]*product.Product{
			p1.ID(): p1,
		}
		items := []order.Item{
			newTestItem(t, p1.ID(), 2),
			newTestItem(t, p1.ID(), 3),
		}

		err := allocator.Allocate(items, products)

		require.NoError(t, err)
		assert.Zero(t, p1.Quantity())
	})

	t.Run("should mutate nothing when duplicate items oversubscribe a product", func(t *testing.T) {
		p1 := newTestProduct(t, "Widget", 4)
		products := map[kernel.UUID]*product.Product{
			p1.ID(): p1,
		}
		items := []order.Item{
			newTestItem(t, p1.ID(), 2),
			newTestItem(t, p1.ID(), 3), // 5 combined, each under stock alone
		}

		err := allocator.Allocate(items, products)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 4, p1.Quantity(), "product must remain unchanged")
	})

	t.Run("should be a no-op for empty item set", func(t *testing.T) {
		require.NoError(t, allocator.Allocate(nil, nil))
	})
}

func TestStockAllocator_Release(t *testing.T) {
	allocator := services.NewStockAllocator()

	t.Run("should restore exactly the reserved quantities", func(t *testing.T) {
		p1 := newTestProduct(t, "Widget", 6)
		p2 := newTestProduct(t, "Gadget", 0)
		products := map[kernel.UUID]*product.Product{
			p1.ID(): p1,
			p2.ID(): p2,
		}
		items := []order.Item{
			newTestItem(t, p1.ID(), 4),
			newTestItem(t, p2.ID(), 7),
		}

		err := allocator.Release(items, products)

		require.NoError(t, err)
		assert.Equal(t, 10, p1.Quantity())
		assert.Equal(t, 7, p2.Quantity())
	})

	t.Run("should fail when a product is missing", func(t *testing.T) {
		items := []order.Item{
			newTestItem(t, kernel.NewUUID(), 1),
		}

		err := allocator.Release(items, map[kernel.UUID]*product.Product{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestStockAllocator_AllocateThenRelease_RoundTrip(t *testing.T) {
	allocator := services.NewStockAllocator()

	p := newTestProduct(t, "Widget", 10)
	products := map[kernel.UUID]*product.Product{p.ID(): p}
	items := []order.Item{newTestItem(t, p.ID(), 4)}

	require.NoError(t, allocator.Allocate(items, products))
	assert.Equal(t, 6, p.Quantity())

	require.NoError(t, allocator.Release(items, products))
	assert.Equal(t, 10, p.Quantity())
}
