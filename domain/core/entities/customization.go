package entities

import (
	"github.com/rodrigogurgel/catalog-sub001/domain/core/validators"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
)

var composition = validators.NewCompositionValidator()

// Customization is a choice offered on an offer or option, e.g. "Size" or
// "Extras". Its quantity bounds how many of its options may be picked.
type Customization struct {
	id          valueobjects.ID
	name        valueobjects.Name
	description *valueobjects.Description
	quantity    valueobjects.Quantity
	status      valueobjects.Status
	options     []*Option
}

// CustomizationParams carries the parts of a customization
type CustomizationParams struct {
	ID          valueobjects.ID
	Name        valueobjects.Name
	Description *valueobjects.Description
	Quantity    valueobjects.Quantity
	Status      valueobjects.Status
	Options     []*Option
}

// NewCustomization builds a customization and validates its whole subtree
func NewCustomization(p CustomizationParams) (*Customization, error) {
	status, err := valueobjects.ParseStatus(string(p.Status))
	if err != nil {
		return nil, err
	}

	id := p.ID
	if id.IsZero() {
		id = valueobjects.NewID()
	}

	c := &Customization{
		id:          id,
		name:        p.Name,
		description: copyDescription(p.Description),
		quantity:    p.Quantity,
		status:      status,
		options:     copyOptions(p.Options),
	}

	if err := composition.ValidateCustomization(c.node()); err != nil {
		return nil, err
	}
	return c, nil
}

// ID returns the customization identifier
func (c *Customization) ID() valueobjects.ID {
	return c.id
}

// Name returns the customization name
func (c *Customization) Name() valueobjects.Name {
	return c.name
}

// Description returns the optional description
func (c *Customization) Description() *valueobjects.Description {
	return copyDescription(c.description)
}

// Quantity returns the permitted selection bounds
func (c *Customization) Quantity() valueobjects.Quantity {
	return c.quantity
}

// Status returns the customization status
func (c *Customization) Status() valueobjects.Status {
	return c.status
}

// Options returns a copy of the option list
func (c *Customization) Options() []*Option {
	return copyOptions(c.options)
}

// Params returns the parts of c, ready to be changed and rebuilt
func (c *Customization) Params() CustomizationParams {
	return CustomizationParams{
		ID:          c.id,
		Name:        c.name,
		Description: copyDescription(c.description),
		Quantity:    c.quantity,
		Status:      c.status,
		Options:     copyOptions(c.options),
	}
}

func (c *Customization) withOptions(options []*Option) (*Customization, error) {
	p := c.Params()
	p.Options = options
	return NewCustomization(p)
}

func (c *Customization) optionIndex(id valueobjects.ID) int {
	for i, o := range c.options {
		if o.id.Equals(id) {
			return i
		}
	}
	return -1
}

func (c *Customization) node() validators.CustomizationNode {
	options := make([]validators.OptionNode, len(c.options))
	for i, o := range c.options {
		options[i] = o.node()
	}
	return validators.CustomizationNode{
		ID:           c.id.String(),
		MaxPermitted: c.quantity.MaxPermitted(),
		Options:      options,
	}
}

func customizationNodes(list []*Customization) []validators.CustomizationNode {
	nodes := make([]validators.CustomizationNode, len(list))
	for i, c := range list {
		nodes[i] = c.node()
	}
	return nodes
}

func copyCustomizations(list []*Customization) []*Customization {
	out := make([]*Customization, len(list))
	copy(out, list)
	return out
}
