package commands

import (
	"fmt"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// MaxProductsPerBatch bounds CreateProductsCommand
const MaxProductsPerBatch = 100

// CreateProductCommand represents the command to create a product in a store
type CreateProductCommand struct {
	StoreID valueobjects.ID
	Product *entities.Product
}

// Validate validates the CreateProductCommand
func (c CreateProductCommand) Validate() error {
	if err := requireID("store ID", c.StoreID); err != nil {
		return err
	}
	if c.Product == nil {
		return pkgerrors.NewValidationError("product is required")
	}
	return nil
}

// CreateProductsCommand creates several products of a store at once
type CreateProductsCommand struct {
	StoreID  valueobjects.ID
	Products []*entities.Product
}

// Validate validates the CreateProductsCommand
func (c CreateProductsCommand) Validate() error {
	if err := requireID("store ID", c.StoreID); err != nil {
		return err
	}
	if len(c.Products) == 0 {
		return pkgerrors.NewValidationError("at least one product is required")
	}
	if len(c.Products) > MaxProductsPerBatch {
		return pkgerrors.NewValidationError(fmt.Sprintf("at most %d products can be created at once", MaxProductsPerBatch))
	}

	seen := make(map[valueobjects.ID]struct{}, len(c.Products))
	for i, p := range c.Products {
		if p == nil {
			return pkgerrors.NewValidationError(fmt.Sprintf("product %d is required", i))
		}
		if _, dup := seen[p.ID()]; dup {
			return pkgerrors.NewValidationError(fmt.Sprintf("product %s appears more than once", p.ID()))
		}
		seen[p.ID()] = struct{}{}
	}
	return nil
}

// ProductIDs returns the IDs of the products in the batch
func (c CreateProductsCommand) ProductIDs() []valueobjects.ID {
	ids := make([]valueobjects.ID, len(c.Products))
	for i, p := range c.Products {
		ids[i] = p.ID()
	}
	return ids
}

// UpdateProductCommand replaces a stored product
type UpdateProductCommand struct {
	StoreID valueobjects.ID
	Product *entities.Product
}

// Validate validates the UpdateProductCommand
func (c UpdateProductCommand) Validate() error {
	return CreateProductCommand(c).Validate()
}

// DeleteProductCommand removes a product that no offer references
type DeleteProductCommand struct {
	StoreID   valueobjects.ID
	ProductID valueobjects.ID
}

// Validate validates the DeleteProductCommand
func (c DeleteProductCommand) Validate() error {
	if err := requireID("store ID", c.StoreID); err != nil {
		return err
	}
	return requireID("product ID", c.ProductID)
}
