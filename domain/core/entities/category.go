package entities

import (
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
)

// Category groups offers inside a store
type Category struct {
	id          valueobjects.ID
	name        valueobjects.Name
	description *valueobjects.Description
	status      valueobjects.Status
}

// CategoryParams carries the already-validated parts of a category
type CategoryParams struct {
	ID          valueobjects.ID
	Name        valueobjects.Name
	Description *valueobjects.Description
	Status      valueobjects.Status
}

// NewCategory creates a category. A zero ID is replaced with a fresh one.
func NewCategory(p CategoryParams) (*Category, error) {
	status, err := valueobjects.ParseStatus(string(p.Status))
	if err != nil {
		return nil, err
	}

	id := p.ID
	if id.IsZero() {
		id = valueobjects.NewID()
	}

	return &Category{
		id:          id,
		name:        p.Name,
		description: copyDescription(p.Description),
		status:      status,
	}, nil
}

// ID returns the category identifier
func (c *Category) ID() valueobjects.ID {
	return c.id
}

// Name returns the category name
func (c *Category) Name() valueobjects.Name {
	return c.name
}

// Description returns the optional description
func (c *Category) Description() *valueobjects.Description {
	return copyDescription(c.description)
}

// Status returns the category status
func (c *Category) Status() valueobjects.Status {
	return c.status
}

func copyDescription(d *valueobjects.Description) *valueobjects.Description {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}
