package entities

import (
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// Offer is the sellable unit of a store category. It exclusively owns its
// customization tree; every mutation returns a new, fully validated Offer.
type Offer struct {
	id             valueobjects.ID
	name           valueobjects.Name
	product        *Product
	price          valueobjects.Price
	status         valueobjects.Status
	customizations []*Customization
	media          []valueobjects.Media
}

// OfferParams carries the parts of an offer
type OfferParams struct {
	ID             valueobjects.ID
	Name           valueobjects.Name
	Product        *Product
	Price          valueobjects.Price
	Status         valueobjects.Status
	Customizations []*Customization
	Media          []valueobjects.Media
}

// NewOffer builds an offer and validates the whole customization tree
func NewOffer(p OfferParams) (*Offer, error) {
	status, err := valueobjects.ParseStatus(string(p.Status))
	if err != nil {
		return nil, err
	}

	id := p.ID
	if id.IsZero() {
		id = valueobjects.NewID()
	}

	o := &Offer{
		id:             id,
		name:           p.Name,
		product:        p.Product,
		price:          p.Price,
		status:         status,
		customizations: copyCustomizations(p.Customizations),
		media:          copyMedia(p.Media),
	}

	if err := composition.ValidateCustomizations(customizationNodes(o.customizations)); err != nil {
		return nil, err
	}
	return o, nil
}

// ID returns the offer identifier
func (o *Offer) ID() valueobjects.ID {
	return o.id
}

// Name returns the offer name
func (o *Offer) Name() valueobjects.Name {
	return o.name
}

// Product returns the referenced product, if any
func (o *Offer) Product() *Product {
	return o.product
}

// Price returns the offer's own price
func (o *Offer) Price() valueobjects.Price {
	return o.price
}

// Status returns the offer status
func (o *Offer) Status() valueobjects.Status {
	return o.status
}

// Customizations returns a copy of the top-level customizations
func (o *Offer) Customizations() []*Customization {
	return copyCustomizations(o.customizations)
}

// Media returns a copy of the offer media
func (o *Offer) Media() []valueobjects.Media {
	return copyMedia(o.media)
}

// Params returns the parts of o, ready to be changed and rebuilt
func (o *Offer) Params() OfferParams {
	return OfferParams{
		ID:             o.id,
		Name:           o.name,
		Product:        o.product,
		Price:          o.price,
		Status:         o.status,
		Customizations: copyCustomizations(o.customizations),
		Media:          copyMedia(o.media),
	}
}

// ProductIDs returns every product referenced by the offer or any option
// below it, each once, in tree order.
func (o *Offer) ProductIDs() []valueobjects.ID {
	seen := make(map[valueobjects.ID]struct{})
	var ids []valueobjects.ID

	add := func(p *Product) {
		if p == nil {
			return
		}
		if _, ok := seen[p.id]; ok {
			return
		}
		seen[p.id] = struct{}{}
		ids = append(ids, p.id)
	}

	add(o.product)
	walkOptions(o.customizations, func(opt *Option) {
		add(opt.product)
	})
	return ids
}

// HasNonZeroPrice reports whether the offer or any option in its tree carries a price
func (o *Offer) HasNonZeroPrice() bool {
	if !o.price.IsZero() {
		return true
	}
	priced := false
	walkOptions(o.customizations, func(opt *Option) {
		if !opt.price.IsZero() {
			priced = true
		}
	})
	return priced
}

// ValidatePrice enforces that an offer cannot be sold for nothing
func (o *Offer) ValidatePrice() error {
	if !o.HasNonZeroPrice() {
		return pkgerrors.NewOfferPriceZero(o.id.String())
	}
	return nil
}

// FindCustomization looks up a customization anywhere in the tree
func (o *Offer) FindCustomization(id valueobjects.ID) (*Customization, bool) {
	return findCustomization(o.customizations, id)
}

// AddCustomization appends a top-level customization
func (o *Offer) AddCustomization(c *Customization) (*Offer, error) {
	return o.withCustomizations(append(copyCustomizations(o.customizations), c))
}

// AddNestedCustomization appends c under the option optionID of customization customizationID
func (o *Offer) AddNestedCustomization(customizationID, optionID valueobjects.ID, c *Customization) (*Offer, error) {
	return o.updateCustomization(customizationID, func(parent *Customization) (*Customization, error) {
		idx := parent.optionIndex(optionID)
		if idx < 0 {
			return nil, pkgerrors.NewOptionNotFound(customizationID.String(), optionID.String())
		}

		opt := parent.options[idx]
		updated, err := opt.withCustomizations(append(copyCustomizations(opt.customizations), c))
		if err != nil {
			return nil, err
		}

		options := copyOptions(parent.options)
		options[idx] = updated
		return parent.withOptions(options)
	})
}

// ReplaceCustomization swaps the customization carrying c's ID, wherever it is
func (o *Offer) ReplaceCustomization(c *Customization) (*Offer, error) {
	return o.updateCustomization(c.id, func(*Customization) (*Customization, error) {
		return c, nil
	})
}

// RemoveCustomization drops the customization id, wherever it is
func (o *Offer) RemoveCustomization(id valueobjects.ID) (*Offer, error) {
	return o.updateCustomization(id, func(*Customization) (*Customization, error) {
		return nil, nil
	})
}

// AddOption appends an option to the customization customizationID
func (o *Offer) AddOption(customizationID valueobjects.ID, opt *Option) (*Offer, error) {
	return o.updateCustomization(customizationID, func(c *Customization) (*Customization, error) {
		return c.withOptions(append(copyOptions(c.options), opt))
	})
}

// ReplaceOption swaps the option carrying opt's ID inside customizationID
func (o *Offer) ReplaceOption(customizationID valueobjects.ID, opt *Option) (*Offer, error) {
	return o.updateCustomization(customizationID, func(c *Customization) (*Customization, error) {
		idx := c.optionIndex(opt.id)
		if idx < 0 {
			return nil, pkgerrors.NewOptionNotFound(customizationID.String(), opt.id.String())
		}
		options := copyOptions(c.options)
		options[idx] = opt
		return c.withOptions(options)
	})
}

// RemoveOption drops optionID from customizationID
func (o *Offer) RemoveOption(customizationID, optionID valueobjects.ID) (*Offer, error) {
	return o.updateCustomization(customizationID, func(c *Customization) (*Customization, error) {
		idx := c.optionIndex(optionID)
		if idx < 0 {
			return nil, pkgerrors.NewOptionNotFound(customizationID.String(), optionID.String())
		}
		options := make([]*Option, 0, len(c.options)-1)
		options = append(options, c.options[:idx]...)
		options = append(options, c.options[idx+1:]...)
		return c.withOptions(options)
	})
}

func (o *Offer) withCustomizations(customizations []*Customization) (*Offer, error) {
	p := o.Params()
	p.Customizations = customizations
	return NewOffer(p)
}

// updateCustomization rebuilds the path from the root to customization id.
// fn returns the replacement, or nil to remove it.
func (o *Offer) updateCustomization(id valueobjects.ID, fn func(*Customization) (*Customization, error)) (*Offer, error) {
	updated, found, err := rebuildCustomizations(o.customizations, id, fn)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, pkgerrors.NewCustomizationNotFound(o.id.String(), id.String())
	}
	return o.withCustomizations(updated)
}

func rebuildCustomizations(
	list []*Customization,
	id valueobjects.ID,
	fn func(*Customization) (*Customization, error),
) ([]*Customization, bool, error) {
	for i, c := range list {
		if c.id.Equals(id) {
			replacement, err := fn(c)
			if err != nil {
				return nil, true, err
			}

			out := make([]*Customization, 0, len(list))
			out = append(out, list[:i]...)
			if replacement != nil {
				out = append(out, replacement)
			}
			out = append(out, list[i+1:]...)
			return out, true, nil
		}

		for j, opt := range c.options {
			nested, found, err := rebuildCustomizations(opt.customizations, id, fn)
			if err != nil {
				return nil, true, err
			}
			if !found {
				continue
			}

			newOpt, err := opt.withCustomizations(nested)
			if err != nil {
				return nil, true, err
			}
			options := copyOptions(c.options)
			options[j] = newOpt

			newC, err := c.withOptions(options)
			if err != nil {
				return nil, true, err
			}

			out := copyCustomizations(list)
			out[i] = newC
			return out, true, nil
		}
	}
	return list, false, nil
}

func findCustomization(list []*Customization, id valueobjects.ID) (*Customization, bool) {
	for _, c := range list {
		if c.id.Equals(id) {
			return c, true
		}
		for _, opt := range c.options {
			if found, ok := findCustomization(opt.customizations, id); ok {
				return found, true
			}
		}
	}
	return nil, false
}

func walkOptions(list []*Customization, visit func(*Option)) {
	for _, c := range list {
		for _, opt := range c.options {
			visit(opt)
			walkOptions(opt.customizations, visit)
		}
	}
}
