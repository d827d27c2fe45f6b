package commands

import (
	"fmt"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// CreateCategoryCommand represents the command to create a category in a store
type CreateCategoryCommand struct {
	StoreID  valueobjects.ID
	Category *entities.Category
}

// Validate validates the CreateCategoryCommand
func (c CreateCategoryCommand) Validate() error {
	if err := requireID("store ID", c.StoreID); err != nil {
		return err
	}
	if c.Category == nil {
		return pkgerrors.NewValidationError("category is required")
	}
	return nil
}

// UpdateCategoryCommand replaces a stored category
type UpdateCategoryCommand struct {
	StoreID  valueobjects.ID
	Category *entities.Category
}

// Validate validates the UpdateCategoryCommand
func (c UpdateCategoryCommand) Validate() error {
	return CreateCategoryCommand(c).Validate()
}

// DeleteCategoryCommand removes a category
type DeleteCategoryCommand struct {
	StoreID    valueobjects.ID
	CategoryID valueobjects.ID
}

// Validate validates the DeleteCategoryCommand
func (c DeleteCategoryCommand) Validate() error {
	if err := requireID("store ID", c.StoreID); err != nil {
		return err
	}
	return requireID("category ID", c.CategoryID)
}

func requireID(field string, id valueobjects.ID) error {
	if id.IsZero() {
		return pkgerrors.NewValidationError(fmt.Sprintf("%s is required", field))
	}
	return nil
}
