package models

import (
	"strings"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
)

// Records are rebuilt through the validating constructors, so a stored item
// that no longer satisfies the domain rules surfaces as a domain error.

// NewCategoryRecord maps a category of a store to its record
func NewCategoryRecord(storeID valueobjects.ID, c *entities.Category) CategoryRecord {
	return CategoryRecord{
		EntityType:  EntityCategory,
		StoreID:     storeID.String(),
		CategoryID:  c.ID().String(),
		Name:        c.Name().String(),
		Description: descriptionValue(c.Description()),
		Status:      c.Status().String(),
	}
}

// ToEntity rebuilds the category
func (r CategoryRecord) ToEntity() (*entities.Category, error) {
	id, err := valueobjects.ParseID(r.CategoryID)
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
	status, err := valueobjects.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return entities.NewCategory(entities.CategoryParams{
		ID:          id,
		Name:        name,
		Description: description,
		Status:      status,
	})
}

// NewProductRecord maps a product of a store to its record
func NewProductRecord(storeID valueobjects.ID, p *entities.Product) ProductRecord {
	s := NewProductSnapshot(p)
	return ProductRecord{
		EntityType:  EntityProduct,
		StoreID:     storeID.String(),
		ProductID:   s.ProductID,
		Name:        s.Name,
		Description: s.Description,
		Media:       s.Media,
	}
}

// ToEntity rebuilds the product
func (r ProductRecord) ToEntity() (*entities.Product, error) {
	return ProductSnapshot{
		ProductID:   r.ProductID,
		Name:        r.Name,
		Description: r.Description,
		Media:       r.Media,
	}.ToEntity()
}

// NewProductSnapshot copies a product into an offer tree
func NewProductSnapshot(p *entities.Product) ProductSnapshot {
	return ProductSnapshot{
		ProductID:   p.ID().String(),
		Name:        p.Name().String(),
		Description: descriptionValue(p.Description()),
		Media:       mediaRecords(p.Media()),
	}
}

// ToEntity rebuilds the product
func (s ProductSnapshot) ToEntity() (*entities.Product, error) {
	id, err := valueobjects.ParseID(s.ProductID)
	if err != nil {
		return nil, err
	}
	name, err := valueobjects.NewName(s.Name)
	if err != nil {
		return nil, err
	}
	description, err := valueobjects.NewOptionalDescription(s.Description)
	if err != nil {
		return nil, err
	}
	media, err := mediaValues(s.Media)
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

// NewOfferRecord maps an offer of a store category to its record
func NewOfferRecord(storeID, categoryID valueobjects.ID, o *entities.Offer) OfferRecord {
	productIDs := o.ProductIDs()
	ids := make([]string, len(productIDs))
	for i, id := range productIDs {
		ids[i] = id.String()
	}

	return OfferRecord{
		EntityType:     EntityOffer,
		StoreID:        storeID.String(),
		CategoryID:     categoryID.String(),
		OfferID:        o.ID().String(),
		Name:           o.Name().String(),
		SearchName:     strings.ToLower(o.Name().String()),
		Product:        productSnapshot(o.Product()),
		Price:          o.Price().String(),
		Status:         o.Status().String(),
		Customizations: customizationRecords(o.Customizations()),
		Media:          mediaRecords(o.Media()),
		ProductIDs:     ids,
	}
}

// ToEntity rebuilds the offer and validates its tree
func (r OfferRecord) ToEntity() (*entities.Offer, error) {
	id, err := valueobjects.ParseID(r.OfferID)
	if err != nil {
		return nil, err
	}
	name, err := valueobjects.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	product, err := snapshotEntity(r.Product)
	if err != nil {
		return nil, err
	}
	price, err := valueobjects.ParsePrice(r.Price)
	if err != nil {
		return nil, err
	}
	status, err := valueobjects.ParseStatus(r.Status)
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
		Status:         status,
		Customizations: customizations,
		Media:          media,
	})
}

func customizationRecords(list []*entities.Customization) []CustomizationRecord {
	out := make([]CustomizationRecord, len(list))
	for i, c := range list {
		out[i] = CustomizationRecord{
			CustomizationID: c.ID().String(),
			Name:            c.Name().String(),
			Description:     descriptionValue(c.Description()),
			MinPermitted:    c.Quantity().MinPermitted(),
			MaxPermitted:    c.Quantity().MaxPermitted(),
			Status:          c.Status().String(),
			Options:         optionRecords(c.Options()),
		}
	}
	return out
}

func optionRecords(list []*entities.Option) []OptionRecord {
	out := make([]OptionRecord, len(list))
	for i, o := range list {
		out[i] = OptionRecord{
			OptionID:       o.ID().String(),
			Name:           o.Name().String(),
			Product:        productSnapshot(o.Product()),
			MinPermitted:   o.Quantity().MinPermitted(),
			MaxPermitted:   o.Quantity().MaxPermitted(),
			Status:         o.Status().String(),
			Price:          o.Price().String(),
			Customizations: customizationRecords(o.Customizations()),
			Media:          mediaRecords(o.Media()),
		}
	}
	return out
}

// customizationEntities rebuilds a tree bottom-up: options first, so every
// constructor sees fully built children.
func customizationEntities(records []CustomizationRecord) ([]*entities.Customization, error) {
	out := make([]*entities.Customization, 0, len(records))
	for _, r := range records {
		id, err := valueobjects.ParseID(r.CustomizationID)
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
		quantity, err := valueobjects.NewQuantity(r.MinPermitted, r.MaxPermitted)
		if err != nil {
			return nil, err
		}
		status, err := valueobjects.ParseStatus(r.Status)
		if err != nil {
			return nil, err
		}
		options, err := optionEntities(r.Options)
		if err != nil {
			return nil, err
		}

		c, err := entities.NewCustomization(entities.CustomizationParams{
			ID:          id,
			Name:        name,
			Description: description,
			Quantity:    quantity,
			Status:      status,
			Options:     options,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func optionEntities(records []OptionRecord) ([]*entities.Option, error) {
	out := make([]*entities.Option, 0, len(records))
	for _, r := range records {
		id, err := valueobjects.ParseID(r.OptionID)
		if err != nil {
			return nil, err
		}
		name, err := valueobjects.NewName(r.Name)
		if err != nil {
			return nil, err
		}
		product, err := snapshotEntity(r.Product)
		if err != nil {
			return nil, err
		}
		quantity, err := valueobjects.NewQuantity(r.MinPermitted, r.MaxPermitted)
		if err != nil {
			return nil, err
		}
		status, err := valueobjects.ParseStatus(r.Status)
		if err != nil {
			return nil, err
		}
		price, err := valueobjects.ParsePrice(r.Price)
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

		o, err := entities.NewOption(entities.OptionParams{
			ID:             id,
			Name:           name,
			Product:        product,
			Quantity:       quantity,
			Status:         status,
			Price:          price,
			Customizations: customizations,
			Media:          media,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func productSnapshot(p *entities.Product) *ProductSnapshot {
	if p == nil {
		return nil
	}
	s := NewProductSnapshot(p)
	return &s
}

func snapshotEntity(s *ProductSnapshot) (*entities.Product, error) {
	if s == nil {
		return nil, nil
	}
	return s.ToEntity()
}

func mediaRecords(media []valueobjects.Media) []MediaRecord {
	out := make([]MediaRecord, len(media))
	for i, m := range media {
		out[i] = MediaRecord{URL: m.URL(), Type: string(m.Type())}
	}
	return out
}

func mediaValues(records []MediaRecord) ([]valueobjects.Media, error) {
	out := make([]valueobjects.Media, 0, len(records))
	for _, r := range records {
		m, err := valueobjects.NewMedia(r.URL, valueobjects.MediaType(r.Type))
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func descriptionValue(d *valueobjects.Description) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
