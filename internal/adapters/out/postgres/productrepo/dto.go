// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Maps product domain entities to relational database tables with an index on
// the owning user for efficient per-tenant listing.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Price    float64 `gorm:"type:numeric"`
	Quantity int
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(product *product.Product) ProductDTO {
	return ProductDTO{
		ID:       product.ID().Bytes(),
		UserID:   product.OwnerID().Bytes(),
		Name:     product.Name(),
		Price:    product.Price(),
		Quantity: product.Quantity(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
// Reconstructs the complete aggregate including the stock quantity using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, ownerID, dto.Name, dto.Price, dto.Quantity)
}
