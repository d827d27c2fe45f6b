package entities

import (
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
)

// Product is sold through offers and options. Offers reference products,
// they never own them.
type Product struct {
	id          valueobjects.ID
	name        valueobjects.Name
	description *valueobjects.Description
	media       []valueobjects.Media
}

// ProductParams carries the already-validated parts of a product
type ProductParams struct {
	ID          valueobjects.ID
	Name        valueobjects.Name
	Description *valueobjects.Description
	Media       []valueobjects.Media
}

// NewProduct creates a product. A zero ID is replaced with a fresh one.
func NewProduct(p ProductParams) (*Product, error) {
	id := p.ID
	if id.IsZero() {
		id = valueobjects.NewID()
	}

	return &Product{
		id:          id,
		name:        p.Name,
		description: copyDescription(p.Description),
		media:       copyMedia(p.Media),
	}, nil
}

// ID returns the product identifier
func (p *Product) ID() valueobjects.ID {
	return p.id
}

// Name returns the product name
func (p *Product) Name() valueobjects.Name {
	return p.name
}

// Description returns the optional description
func (p *Product) Description() *valueobjects.Description {
	return copyDescription(p.description)
}

// Media returns a copy of the product media
func (p *Product) Media() []valueobjects.Media {
	return copyMedia(p.media)
}

func copyMedia(media []valueobjects.Media) []valueobjects.Media {
	out := make([]valueobjects.Media, len(media))
	copy(out, media)
	return out
}
