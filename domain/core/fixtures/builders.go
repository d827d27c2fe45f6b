// Package fixtures provides builders of valid catalog entities for tests.
package fixtures

import (
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
)

// CategoryBuilder helps create test categories with default values
type CategoryBuilder struct {
	id          valueobjects.ID
	name        string
	description *string
	status      valueobjects.Status
}

func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{
		id:     valueobjects.NewID(),
		name:   "Burgers",
		status: valueobjects.StatusAvailable,
	}
}

func (b *CategoryBuilder) WithID(id valueobjects.ID) *CategoryBuilder {
	b.id = id
	return b
}

func (b *CategoryBuilder) WithName(name string) *CategoryBuilder {
	b.name = name
	return b
}

func (b *CategoryBuilder) WithDescription(description string) *CategoryBuilder {
	b.description = &description
	return b
}

func (b *CategoryBuilder) WithStatus(status valueobjects.Status) *CategoryBuilder {
	b.status = status
	return b
}

func (b *CategoryBuilder) Build() (*entities.Category, error) {
	name, err := valueobjects.NewName(b.name)
	if err != nil {
		return nil, err
	}
	description, err := valueobjects.NewOptionalDescription(b.description)
	if err != nil {
		return nil, err
	}
	return entities.NewCategory(entities.CategoryParams{
		ID:          b.id,
		Name:        name,
		Description: description,
		Status:      b.status,
	})
}

func (b *CategoryBuilder) MustBuild() *entities.Category {
	return must(b.Build())
}

// ProductBuilder helps create test products with default values
type ProductBuilder struct {
	id          valueobjects.ID
	name        string
	description *string
	media       []valueobjects.Media
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		id:   valueobjects.NewID(),
		name: "Cheeseburger",
	}
}

func (b *ProductBuilder) WithID(id valueobjects.ID) *ProductBuilder {
	b.id = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.name = name
	return b
}

func (b *ProductBuilder) WithDescription(description string) *ProductBuilder {
	b.description = &description
	return b
}

func (b *ProductBuilder) WithImage(url string) *ProductBuilder {
	b.media = append(b.media, must(valueobjects.NewMedia(url, valueobjects.MediaTypeImage)))
	return b
}

func (b *ProductBuilder) Build() (*entities.Product, error) {
	name, err := valueobjects.NewName(b.name)
	if err != nil {
		return nil, err
	}
	description, err := valueobjects.NewOptionalDescription(b.description)
	if err != nil {
		return nil, err
	}
	return entities.NewProduct(entities.ProductParams{
		ID:          b.id,
		Name:        name,
		Description: description,
		Media:       b.media,
	})
}

func (b *ProductBuilder) MustBuild() *entities.Product {
	return must(b.Build())
}

// OptionBuilder helps create test options with default values
type OptionBuilder struct {
	id             valueobjects.ID
	name           string
	product        *entities.Product
	min, max       int
	status         valueobjects.Status
	price          string
	customizations []*entities.Customization
}

func NewOptionBuilder() *OptionBuilder {
	return &OptionBuilder{
		id:     valueobjects.NewID(),
		name:   "Extra cheese",
		min:    0,
		max:    1,
		status: valueobjects.StatusAvailable,
		price:  "1.00",
	}
}

func (b *OptionBuilder) WithID(id valueobjects.ID) *OptionBuilder {
	b.id = id
	return b
}

func (b *OptionBuilder) WithName(name string) *OptionBuilder {
	b.name = name
	return b
}

func (b *OptionBuilder) WithProduct(product *entities.Product) *OptionBuilder {
	b.product = product
	return b
}

func (b *OptionBuilder) WithQuantity(min, max int) *OptionBuilder {
	b.min, b.max = min, max
	return b
}

func (b *OptionBuilder) WithStatus(status valueobjects.Status) *OptionBuilder {
	b.status = status
	return b
}

func (b *OptionBuilder) WithPrice(price string) *OptionBuilder {
	b.price = price
	return b
}

func (b *OptionBuilder) WithCustomizations(customizations ...*entities.Customization) *OptionBuilder {
	b.customizations = append(b.customizations, customizations...)
	return b
}

func (b *OptionBuilder) Build() (*entities.Option, error) {
	name, err := valueobjects.NewName(b.name)
	if err != nil {
		return nil, err
	}
	quantity, err := valueobjects.NewQuantity(b.min, b.max)
	if err != nil {
		return nil, err
	}
	price, err := valueobjects.ParsePrice(b.price)
	if err != nil {
		return nil, err
	}
	return entities.NewOption(entities.OptionParams{
		ID:             b.id,
		Name:           name,
		Product:        b.product,
		Quantity:       quantity,
		Status:         b.status,
		Price:          price,
		Customizations: b.customizations,
	})
}

func (b *OptionBuilder) MustBuild() *entities.Option {
	return must(b.Build())
}

// CustomizationBuilder helps create test customizations. Without explicit
// options it gets a single default option.
type CustomizationBuilder struct {
	id       valueobjects.ID
	name     string
	min, max int
	status   valueobjects.Status
	options  []*entities.Option
}

func NewCustomizationBuilder() *CustomizationBuilder {
	return &CustomizationBuilder{
		id:     valueobjects.NewID(),
		name:   "Extras",
		min:    0,
		max:    1,
		status: valueobjects.StatusAvailable,
	}
}

func (b *CustomizationBuilder) WithID(id valueobjects.ID) *CustomizationBuilder {
	b.id = id
	return b
}

func (b *CustomizationBuilder) WithName(name string) *CustomizationBuilder {
	b.name = name
	return b
}

func (b *CustomizationBuilder) WithQuantity(min, max int) *CustomizationBuilder {
	b.min, b.max = min, max
	return b
}

func (b *CustomizationBuilder) WithOptions(options ...*entities.Option) *CustomizationBuilder {
	b.options = append(b.options, options...)
	return b
}

func (b *CustomizationBuilder) Build() (*entities.Customization, error) {
	name, err := valueobjects.NewName(b.name)
	if err != nil {
		return nil, err
	}
	quantity, err := valueobjects.NewQuantity(b.min, b.max)
	if err != nil {
		return nil, err
	}

	options := b.options
	if options == nil {
		options = []*entities.Option{NewOptionBuilder().MustBuild()}
	}

	return entities.NewCustomization(entities.CustomizationParams{
		ID:       b.id,
		Name:     name,
		Quantity: quantity,
		Status:   b.status,
		Options:  options,
	})
}

func (b *CustomizationBuilder) MustBuild() *entities.Customization {
	return must(b.Build())
}

// OfferBuilder helps create test offers with default values
type OfferBuilder struct {
	id             valueobjects.ID
	name           string
	product        *entities.Product
	price          string
	status         valueobjects.Status
	customizations []*entities.Customization
	media          []valueobjects.Media
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		id:     valueobjects.NewID(),
		name:   "Cheeseburger Combo",
		price:  "25.90",
		status: valueobjects.StatusAvailable,
	}
}

func (b *OfferBuilder) WithID(id valueobjects.ID) *OfferBuilder {
	b.id = id
	return b
}

func (b *OfferBuilder) WithName(name string) *OfferBuilder {
	b.name = name
	return b
}

func (b *OfferBuilder) WithProduct(product *entities.Product) *OfferBuilder {
	b.product = product
	return b
}

func (b *OfferBuilder) WithPrice(price string) *OfferBuilder {
	b.price = price
	return b
}

func (b *OfferBuilder) WithStatus(status valueobjects.Status) *OfferBuilder {
	b.status = status
	return b
}

func (b *OfferBuilder) WithCustomizations(customizations ...*entities.Customization) *OfferBuilder {
	b.customizations = append(b.customizations, customizations...)
	return b
}

func (b *OfferBuilder) WithImage(url string) *OfferBuilder {
	b.media = append(b.media, must(valueobjects.NewMedia(url, valueobjects.MediaTypeImage)))
	return b
}

func (b *OfferBuilder) Build() (*entities.Offer, error) {
	name, err := valueobjects.NewName(b.name)
	if err != nil {
		return nil, err
	}
	price, err := valueobjects.ParsePrice(b.price)
	if err != nil {
		return nil, err
	}
	return entities.NewOffer(entities.OfferParams{
		ID:             b.id,
		Name:           name,
		Product:        b.product,
		Price:          price,
		Status:         b.status,
		Customizations: b.customizations,
		Media:          b.media,
	})
}

func (b *OfferBuilder) MustBuild() *entities.Offer {
	return must(b.Build())
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
