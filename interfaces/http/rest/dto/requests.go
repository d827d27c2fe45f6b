package dto

// MediaRequest references an asset of a product, offer or option
type MediaRequest struct {
	URL  string `json:"url" validate:"required,url"`
	Type string `json:"type" validate:"required"`
}

// CategoryRequest is the body of category create and update calls
type CategoryRequest struct {
	ID          string  `json:"id,omitempty" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status" validate:"required"`
}

// ProductRequest is the body of product create and update calls. Offers and
// options embed it to reference the product they sell.
type ProductRequest struct {
	ID          string         `json:"id,omitempty" validate:"omitempty,uuid"`
	Name        string         `json:"name" validate:"required"`
	Description *string        `json:"description,omitempty"`
	Media       []MediaRequest `json:"media,omitempty" validate:"omitempty,dive"`
}

// ProductBatchRequest creates several products at once
type ProductBatchRequest struct {
	Products []ProductRequest `json:"products" validate:"required,min=1,max=100,dive"`
}

// QuantityRequest bounds how many times something may be picked
type QuantityRequest struct {
	MinPermitted int `json:"min_permitted"`
	MaxPermitted int `json:"max_permitted"`
}

// OptionRequest is one answer of a customization
type OptionRequest struct {
	ID             string                 `json:"id,omitempty" validate:"omitempty,uuid"`
	Name           string                 `json:"name" validate:"required"`
	Product        *ProductRequest        `json:"product,omitempty"`
	Quantity       QuantityRequest        `json:"quantity"`
	Status         string                 `json:"status" validate:"required"`
	Price          string                 `json:"price,omitempty" validate:"omitempty,numeric"`
	Customizations []CustomizationRequest `json:"customizations,omitempty" validate:"omitempty,dive"`
	Media          []MediaRequest         `json:"media,omitempty" validate:"omitempty,dive"`
}

// CustomizationRequest is a choice offered on an offer or option
type CustomizationRequest struct {
	ID          string          `json:"id,omitempty" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description,omitempty"`
	Quantity    QuantityRequest `json:"quantity"`
	Status      string          `json:"status" validate:"required"`
	Options     []OptionRequest `json:"options" validate:"dive"`
}

// OfferRequest is the body of offer create and update calls
type OfferRequest struct {
	ID             string                 `json:"id,omitempty" validate:"omitempty,uuid"`
	Name           string                 `json:"name" validate:"required"`
	Product        *ProductRequest        `json:"product,omitempty"`
	Price          string                 `json:"price,omitempty" validate:"omitempty,numeric"`
	Status         string                 `json:"status" validate:"required"`
	Customizations []CustomizationRequest `json:"customizations,omitempty" validate:"omitempty,dive"`
	Media          []MediaRequest         `json:"media,omitempty" validate:"omitempty,dive"`
}
