package entities

import (
	"github.com/rodrigogurgel/catalog-sub001/domain/core/validators"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
)

// Option is one selectable answer of a customization. Options may carry
// further customizations of their own, so the tree has no fixed depth.
type Option struct {
	id             valueobjects.ID
	name           valueobjects.Name
	product        *Product
	quantity       valueobjects.Quantity
	status         valueobjects.Status
	price          valueobjects.Price
	customizations []*Customization
	media          []valueobjects.Media
}

// OptionParams carries the parts of an option
type OptionParams struct {
	ID             valueobjects.ID
	Name           valueobjects.Name
	Product        *Product
	Quantity       valueobjects.Quantity
	Status         valueobjects.Status
	Price          valueobjects.Price
	Customizations []*Customization
	Media          []valueobjects.Media
}

// NewOption builds an option and validates the customizations below it
func NewOption(p OptionParams) (*Option, error) {
	status, err := valueobjects.ParseStatus(string(p.Status))
	if err != nil {
		return nil, err
	}

	id := p.ID
	if id.IsZero() {
		id = valueobjects.NewID()
	}

	o := &Option{
		id:             id,
		name:           p.Name,
		product:        p.Product,
		quantity:       p.Quantity,
		status:         status,
		price:          p.Price,
		customizations: copyCustomizations(p.Customizations),
		media:          copyMedia(p.Media),
	}

	if err := composition.ValidateOption(o.node()); err != nil {
		return nil, err
	}
	return o, nil
}

// ID returns the option identifier
func (o *Option) ID() valueobjects.ID {
	return o.id
}

// Name returns the option name
func (o *Option) Name() valueobjects.Name {
	return o.name
}

// Product returns the referenced product, if any
func (o *Option) Product() *Product {
	return o.product
}

// Quantity returns the permitted selection bounds
func (o *Option) Quantity() valueobjects.Quantity {
	return o.quantity
}

// Status returns the option status
func (o *Option) Status() valueobjects.Status {
	return o.status
}

// Price returns the option price
func (o *Option) Price() valueobjects.Price {
	return o.price
}

// Customizations returns a copy of the nested customizations
func (o *Option) Customizations() []*Customization {
	return copyCustomizations(o.customizations)
}

// Media returns a copy of the option media
func (o *Option) Media() []valueobjects.Media {
	return copyMedia(o.media)
}

// Params returns the parts of o, ready to be changed and rebuilt
func (o *Option) Params() OptionParams {
	return OptionParams{
		ID:             o.id,
		Name:           o.name,
		Product:        o.product,
		Quantity:       o.quantity,
		Status:         o.status,
		Price:          o.price,
		Customizations: copyCustomizations(o.customizations),
		Media:          copyMedia(o.media),
	}
}

func (o *Option) withCustomizations(customizations []*Customization) (*Option, error) {
	p := o.Params()
	p.Customizations = customizations
	return NewOption(p)
}

func (o *Option) node() validators.OptionNode {
	return validators.OptionNode{
		ID:             o.id.String(),
		Available:      o.status.IsAvailable(),
		Customizations: customizationNodes(o.customizations),
	}
}

func copyOptions(list []*Option) []*Option {
	out := make([]*Option, len(list))
	copy(out, list)
	return out
}
