package dto

import (
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
)

// MediaResponse is the JSON form of a media reference
type MediaResponse struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// QuantityResponse is the JSON form of a quantity
type QuantityResponse struct {
	MinPermitted int `json:"min_permitted"`
	MaxPermitted int `json:"max_permitted"`
}

// CategoryResponse is the JSON form of a category
type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
}

// ProductResponse is the JSON form of a product
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Media       []MediaResponse `json:"media"`
}

// OptionResponse is the JSON form of an option
type OptionResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Product        *ProductResponse        `json:"product,omitempty"`
	Quantity       QuantityResponse        `json:"quantity"`
	Status         string                  `json:"status"`
	Price          string                  `json:"price"`
	Customizations []CustomizationResponse `json:"customizations"`
	Media          []MediaResponse         `json:"media"`
}

// CustomizationResponse is the JSON form of a customization
type CustomizationResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Quantity    QuantityResponse `json:"quantity"`
	Status      string           `json:"status"`
	Options     []OptionResponse `json:"options"`
}

// OfferResponse is the JSON form of an offer with its whole tree
type OfferResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Product        *ProductResponse        `json:"product,omitempty"`
	Price          string                  `json:"price"`
	Status         string                  `json:"status"`
	Customizations []CustomizationResponse `json:"customizations"`
	Media          []MediaResponse         `json:"media"`
}

// CountResponse carries the result of a count call
type CountResponse struct {
	Count int64 `json:"count"`
}

// NewCategoryResponse maps a category to its JSON form
func NewCategoryResponse(c *entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID().String(),
		Name:        c.Name().String(),
		Description: descriptionString(c.Description()),
		Status:      c.Status().String(),
	}
}

// NewCategoryResponses maps a list of categories
func NewCategoryResponses(list []*entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(list))
	for i, c := range list {
		out[i] = NewCategoryResponse(c)
	}
	return out
}

// NewProductResponse maps a product to its JSON form
func NewProductResponse(p *entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID().String(),
		Name:        p.Name().String(),
		Description: descriptionString(p.Description()),
		Media:       mediaResponses(p.Media()),
	}
}

// NewProductResponses maps a list of products
func NewProductResponses(list []*entities.Product) []ProductResponse {
	out := make([]ProductResponse, len(list))
	for i, p := range list {
		out[i] = NewProductResponse(p)
	}
	return out
}

// NewOfferResponse maps an offer and its tree to the JSON form
func NewOfferResponse(o *entities.Offer) OfferResponse {
	return OfferResponse{
		ID:             o.ID().String(),
		Name:           o.Name().String(),
		Product:        productResponse(o.Product()),
		Price:          o.Price().String(),
		Status:         o.Status().String(),
		Customizations: customizationResponses(o.Customizations()),
		Media:          mediaResponses(o.Media()),
	}
}

// NewOfferResponses maps a list of offers
func NewOfferResponses(list []*entities.Offer) []OfferResponse {
	out := make([]OfferResponse, len(list))
	for i, o := range list {
		out[i] = NewOfferResponse(o)
	}
	return out
}

func customizationResponses(list []*entities.Customization) []CustomizationResponse {
	out := make([]CustomizationResponse, len(list))
	for i, c := range list {
		out[i] = CustomizationResponse{
			ID:          c.ID().String(),
			Name:        c.Name().String(),
			Description: descriptionString(c.Description()),
			Quantity:    quantityResponse(c.Quantity()),
			Status:      c.Status().String(),
			Options:     optionResponses(c.Options()),
		}
	}
	return out
}

func optionResponses(list []*entities.Option) []OptionResponse {
	out := make([]OptionResponse, len(list))
	for i, o := range list {
		out[i] = OptionResponse{
			ID:             o.ID().String(),
			Name:           o.Name().String(),
			Product:        productResponse(o.Product()),
			Quantity:       quantityResponse(o.Quantity()),
			Status:         o.Status().String(),
			Price:          o.Price().String(),
			Customizations: customizationResponses(o.Customizations()),
			Media:          mediaResponses(o.Media()),
		}
	}
	return out
}

func productResponse(p *entities.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	r := NewProductResponse(p)
	return &r
}

func quantityResponse(q valueobjects.Quantity) QuantityResponse {
	return QuantityResponse{MinPermitted: q.MinPermitted(), MaxPermitted: q.MaxPermitted()}
}

func mediaResponses(list []valueobjects.Media) []MediaResponse {
	out := make([]MediaResponse, len(list))
	for i, m := range list {
		out[i] = MediaResponse{URL: m.URL(), Type: string(m.Type())}
	}
	return out
}

func descriptionString(d *valueobjects.Description) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
