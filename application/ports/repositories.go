package ports

import (
	"context"
	"time"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/domain/events"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
)

// Every repository wraps client failures in a DATASTORE_INTEGRATION_FAILED
// domain error. GetByID returns (nil, nil) when nothing is stored under the key.

// StoreRepository answers store existence questions
type StoreRepository interface {
	Exists(ctx context.Context, storeID valueobjects.ID) (bool, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	Exists(ctx context.Context, storeID, categoryID valueobjects.ID) (bool, error)
	Create(ctx context.Context, storeID valueobjects.ID, category *entities.Category) error

	// Update replaces the stored category wholesale
	Update(ctx context.Context, storeID valueobjects.ID, category *entities.Category) error
	Delete(ctx context.Context, storeID, categoryID valueobjects.ID) error
	GetByID(ctx context.Context, storeID, categoryID valueobjects.ID) (*entities.Category, error)
	List(ctx context.Context, storeID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Category], error)
	Count(ctx context.Context, storeID valueobjects.ID) (int64, error)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	Exists(ctx context.Context, storeID, productID valueobjects.ID) (bool, error)
	Create(ctx context.Context, storeID valueobjects.ID, product *entities.Product) error

	// CreateAll stores several products in one call
	CreateAll(ctx context.Context, storeID valueobjects.ID, products []*entities.Product) error
	Update(ctx context.Context, storeID valueobjects.ID, product *entities.Product) error
	Delete(ctx context.Context, storeID, productID valueobjects.ID) error
	GetByID(ctx context.Context, storeID, productID valueobjects.ID) (*entities.Product, error)
	List(ctx context.Context, storeID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Product], error)
	Count(ctx context.Context, storeID valueobjects.ID) (int64, error)

	// GetIfNotExists returns the subset of productIDs that is not stored
	GetIfNotExists(ctx context.Context, storeID valueobjects.ID, productIDs []valueobjects.ID) ([]valueobjects.ID, error)

	// IsInUse reports whether any offer of the store references the product
	IsInUse(ctx context.Context, storeID, productID valueobjects.ID) (bool, error)
}

// OfferRepository defines the interface for offer persistence. Offers are
// stored with their whole customization tree.
type OfferRepository interface {
	Exists(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) (bool, error)
	Create(ctx context.Context, storeID, categoryID valueobjects.ID, offer *entities.Offer) error
	Update(ctx context.Context, storeID, categoryID valueobjects.ID, offer *entities.Offer) error
	Delete(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) error
	GetByID(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) (*entities.Offer, error)
	List(ctx context.Context, storeID, categoryID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Offer], error)
	Count(ctx context.Context, storeID, categoryID valueobjects.ID) (int64, error)

	// Search matches offer names of a store case-insensitively and returns
	// one window of the matches together with the total match count
	Search(ctx context.Context, storeID valueobjects.ID, query string, limit, offset int) ([]*entities.Offer, int64, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// Metrics records use case executions
type Metrics interface {
	RecordUseCase(ctx context.Context, name string, duration time.Duration, err error)
}
