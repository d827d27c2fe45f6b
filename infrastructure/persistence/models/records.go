// Package models holds the storage records shared by the datastore adapters
// and the mapping between records and domain entities.
package models

// Entity types stored in the EntityType attribute
const (
	EntityCategory = "CATEGORY"
	EntityProduct  = "PRODUCT"
	EntityOffer    = "OFFER"
)

// Key attributes only mean something to the key-value adapter, so they are
// skipped when the record is written as a document.

// CategoryRecord is the stored form of a category
type CategoryRecord struct {
	PK          string  `dynamodbav:"PK" bson:"-"`
	SK          string  `dynamodbav:"SK" bson:"-"`
	EntityType  string  `dynamodbav:"EntityType" bson:"-"`
	StoreID     string  `dynamodbav:"StoreID" bson:"store_id"`
	CategoryID  string  `dynamodbav:"CategoryID" bson:"category_id"`
	Name        string  `dynamodbav:"Name" bson:"name"`
	Description *string `dynamodbav:"Description,omitempty" bson:"description,omitempty"`
	Status      string  `dynamodbav:"Status" bson:"status"`
}

// MediaRecord is the stored form of a media reference
type MediaRecord struct {
	URL  string `dynamodbav:"URL" bson:"url"`
	Type string `dynamodbav:"Type" bson:"type"`
}

// ProductRecord is the stored form of a product
type ProductRecord struct {
	PK          string        `dynamodbav:"PK" bson:"-"`
	SK          string        `dynamodbav:"SK" bson:"-"`
	EntityType  string        `dynamodbav:"EntityType" bson:"-"`
	StoreID     string        `dynamodbav:"StoreID" bson:"store_id"`
	ProductID   string        `dynamodbav:"ProductID" bson:"product_id"`
	Name        string        `dynamodbav:"Name" bson:"name"`
	Description *string       `dynamodbav:"Description,omitempty" bson:"description,omitempty"`
	Media       []MediaRecord `dynamodbav:"Media" bson:"media"`
}

// ProductSnapshot is a product copied into an offer tree
type ProductSnapshot struct {
	ProductID   string        `dynamodbav:"ProductID" bson:"product_id"`
	Name        string        `dynamodbav:"Name" bson:"name"`
	Description *string       `dynamodbav:"Description,omitempty" bson:"description,omitempty"`
	Media       []MediaRecord `dynamodbav:"Media" bson:"media"`
}

// OptionRecord is the stored form of an option
type OptionRecord struct {
	OptionID       string                `dynamodbav:"OptionID" bson:"option_id"`
	Name           string                `dynamodbav:"Name" bson:"name"`
	Product        *ProductSnapshot      `dynamodbav:"Product,omitempty" bson:"product,omitempty"`
	MinPermitted   int                   `dynamodbav:"MinPermitted" bson:"min_permitted"`
	MaxPermitted   int                   `dynamodbav:"MaxPermitted" bson:"max_permitted"`
	Status         string                `dynamodbav:"Status" bson:"status"`
	Price          string                `dynamodbav:"Price" bson:"price"`
	Customizations []CustomizationRecord `dynamodbav:"Customizations" bson:"customizations"`
	Media          []MediaRecord         `dynamodbav:"Media" bson:"media"`
}

// CustomizationRecord is the stored form of a customization
type CustomizationRecord struct {
	CustomizationID string         `dynamodbav:"CustomizationID" bson:"customization_id"`
	Name            string         `dynamodbav:"Name" bson:"name"`
	Description     *string        `dynamodbav:"Description,omitempty" bson:"description,omitempty"`
	MinPermitted    int            `dynamodbav:"MinPermitted" bson:"min_permitted"`
	MaxPermitted    int            `dynamodbav:"MaxPermitted" bson:"max_permitted"`
	Status          string         `dynamodbav:"Status" bson:"status"`
	Options         []OptionRecord `dynamodbav:"Options" bson:"options"`
}

// OfferRecord is the stored form of an offer. The whole tree is embedded and
// ProductIDs lists every product referenced anywhere in it.
type OfferRecord struct {
	PK             string                `dynamodbav:"PK" bson:"-"`
	SK             string                `dynamodbav:"SK" bson:"-"`
	EntityType     string                `dynamodbav:"EntityType" bson:"-"`
	StoreID        string                `dynamodbav:"StoreID" bson:"store_id"`
	CategoryID     string                `dynamodbav:"CategoryID" bson:"category_id"`
	OfferID        string                `dynamodbav:"OfferID" bson:"offer_id"`
	Name           string                `dynamodbav:"Name" bson:"name"`
	SearchName     string                `dynamodbav:"SearchName" bson:"-"`
	Product        *ProductSnapshot      `dynamodbav:"Product,omitempty" bson:"product,omitempty"`
	Price          string                `dynamodbav:"Price" bson:"price"`
	Status         string                `dynamodbav:"Status" bson:"status"`
	Customizations []CustomizationRecord `dynamodbav:"Customizations" bson:"customizations"`
	Media          []MediaRecord         `dynamodbav:"Media" bson:"media"`
	ProductIDs     []string              `dynamodbav:"ProductIDs" bson:"product_ids"`
}
