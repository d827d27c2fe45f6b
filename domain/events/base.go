package events

import (
	"time"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Event types
const (
	CategoryCreated = "category.created"
	CategoryUpdated = "category.updated"
	CategoryDeleted = "category.deleted"

	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"

	OfferCreated = "offer.created"
	OfferUpdated = "offer.updated"
	OfferDeleted = "offer.deleted"
)

// CatalogEvent is raised after a catalog aggregate was written
type CatalogEvent struct {
	BaseEvent
	StoreID    string `json:"store_id"`
	CategoryID string `json:"category_id,omitempty"`
}

// NewCategoryEvent creates an event about a category of a store
func NewCategoryEvent(eventType string, storeID, categoryID valueobjects.ID, timestamp time.Time) CatalogEvent {
	return CatalogEvent{
		BaseEvent: BaseEvent{
			AggregateID: categoryID.String(),
			EventType:   eventType,
			Timestamp:   timestamp,
			Version:     1,
		},
		StoreID:    storeID.String(),
		CategoryID: categoryID.String(),
	}
}

// NewProductEvent creates an event about a product of a store
func NewProductEvent(eventType string, storeID, productID valueobjects.ID, timestamp time.Time) CatalogEvent {
	return CatalogEvent{
		BaseEvent: BaseEvent{
			AggregateID: productID.String(),
			EventType:   eventType,
			Timestamp:   timestamp,
			Version:     1,
		},
		StoreID: storeID.String(),
	}
}

// NewOfferEvent creates an event about an offer of a store category
func NewOfferEvent(eventType string, storeID, categoryID, offerID valueobjects.ID, timestamp time.Time) CatalogEvent {
	return CatalogEvent{
		BaseEvent: BaseEvent{
			AggregateID: offerID.String(),
			EventType:   eventType,
			Timestamp:   timestamp,
			Version:     1,
		},
		StoreID:    storeID.String(),
		CategoryID: categoryID.String(),
	}
}
