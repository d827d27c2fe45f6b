package dto

import (
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// Requests are turned into entities through the value object constructors,
// so a malformed field surfaces as the matching domain error.

// ToEntity builds the category. An empty ID yields a fresh one.
func (r CategoryRequest) ToEntity() (*entities.Category, error) {
	id, err := valueobjects.ParseIDOrNew(r.ID)
	if err != nil {
		return nil, err
	}
	name, err := valueobjects.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	description, err := valueobjects.NewOptionalDescription(r.Description)
	if err != nil {
		return nil, err
	}
	return entities.NewCategory(entities.CategoryParams{
		ID:          id,
		Name:        name,
		Description: description,
		Status:      valueobjects.Status(r.Status),
	})
}

// ToEntity builds the product. An empty ID yields a fresh one.
func (r ProductRequest) ToEntity() (*entities.Product, error) {
	id, err := valueobjects.ParseIDOrNew(r.ID)
	if err != nil {
		return nil, err
	}
	name, err := valueobjects.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	description, err := valueobjects.NewOptionalDescription(r.Description)
	if err != nil {
		return nil, err
	}
	media, err := mediaValues(r.Media)
	if err != nil {
		return nil, err
	}
	return entities.NewProduct(entities.ProductParams{
		ID:          id,
		Name:        name,
		Description: description,
		Media:       media,
	})
}

// ToEntities builds every product of the batch, failing on the first invalid one
func (r ProductBatchRequest) ToEntities() ([]*entities.Product, error) {
	products := make([]*entities.Product, len(r.Products))
	for i, p := range r.Products {
		product, err := p.ToEntity()
		if err != nil {
			return nil, err
		}
		products[i] = product
	}
	return products, nil
}

// ToEntity builds the offer and validates its whole tree
func (r OfferRequest) ToEntity() (*entities.Offer, error) {
	id, err := valueobjects.ParseIDOrNew(r.ID)
	if err != nil {
		return nil, err
	}
	name, err := valueobjects.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	product, err := optionalProduct(r.Product)
	if err != nil {
		return nil, err
	}
	price, err := priceValue(r.Price)
	if err != nil {
		return nil, err
	}
	customizations, err := customizationEntities(r.Customizations)
	if err != nil {
		return nil, err
	}
	media, err := mediaValues(r.Media)
	if err != nil {
		return nil, err
	}
	return entities.NewOffer(entities.OfferParams{
		ID:             id,
		Name:           name,
		Product:        product,
		Price:          price,
		Status:         valueobjects.Status(r.Status),
		Customizations: customizations,
		Media:          media,
	})
}

// ToEntity builds the customization and its options
func (r CustomizationRequest) ToEntity() (*entities.Customization, error) {
	id, err := valueobjects.ParseIDOrNew(r.ID)
	if err != nil {
		return nil, err
	}
	name, err := valueobjects.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	description, err := valueobjects.NewOptionalDescription(r.Description)
	if err != nil {
		return nil, err
	}
	quantity, err := valueobjects.NewQuantity(r.Quantity.MinPermitted, r.Quantity.MaxPermitted)
	if err != nil {
		return nil, err
	}

	options := make([]*entities.Option, len(r.Options))
	for i, o := range r.Options {
		if options[i], err = o.ToEntity(); err != nil {
			return nil, err
		}
	}

	return entities.NewCustomization(entities.CustomizationParams{
		ID:          id,
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Status:      valueobjects.Status(r.Status),
		Options:     options,
	})
}

// ToEntity builds the option and the customizations below it
func (r OptionRequest) ToEntity() (*entities.Option, error) {
	id, err := valueobjects.ParseIDOrNew(r.ID)
	if err != nil {
		return nil, err
	}
	name, err := valueobjects.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	product, err := optionalProduct(r.Product)
	if err != nil {
		return nil, err
	}
	quantity, err := valueobjects.NewQuantity(r.Quantity.MinPermitted, r.Quantity.MaxPermitted)
	if err != nil {
		return nil, err
	}
	price, err := priceValue(r.Price)
	if err != nil {
		return nil, err
	}
	customizations, err := customizationEntities(r.Customizations)
	if err != nil {
		return nil, err
	}
	media, err := mediaValues(r.Media)
	if err != nil {
		return nil, err
	}
	return entities.NewOption(entities.OptionParams{
		ID:             id,
		Name:           name,
		Product:        product,
		Quantity:       quantity,
		Status:         valueobjects.Status(r.Status),
		Price:          price,
		Customizations: customizations,
		Media:          media,
	})
}

func customizationEntities(list []CustomizationRequest) ([]*entities.Customization, error) {
	out := make([]*entities.Customization, len(list))
	for i, c := range list {
		customization, err := c.ToEntity()
		if err != nil {
			return nil, err
		}
		out[i] = customization
	}
	return out, nil
}

// optionalProduct requires the ID of a referenced product, it must already exist
func optionalProduct(r *ProductRequest) (*entities.Product, error) {
	if r == nil {
		return nil, nil
	}
	if r.ID == "" {
		return nil, pkgerrors.NewInvalidID("product.id", r.ID)
	}
	return r.ToEntity()
}

// priceValue treats a missing price as zero
func priceValue(s string) (valueobjects.Price, error) {
	if s == "" {
		return valueobjects.ZeroPrice(), nil
	}
	return valueobjects.ParsePrice(s)
}

func mediaValues(list []MediaRequest) ([]valueobjects.Media, error) {
	out := make([]valueobjects.Media, len(list))
	for i, m := range list {
		media, err := valueobjects.NewMedia(m.URL, valueobjects.MediaType(m.Type))
		if err != nil {
			return nil, err
		}
		out[i] = media
	}
	return out, nil
}
