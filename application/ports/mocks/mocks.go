// Package mocks provides testify mocks of the application ports.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/domain/events"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
)

// MockStoreRepository is a mock of ports.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Exists(ctx context.Context, storeID valueobjects.ID) (bool, error) {
	args := m.Called(ctx, storeID)
	return args.Bool(0), args.Error(1)
}

// MockCategoryRepository is a mock of ports.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Exists(ctx context.Context, storeID, categoryID valueobjects.ID) (bool, error) {
	args := m.Called(ctx, storeID, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, storeID valueobjects.ID, category *entities.Category) error {
	args := m.Called(ctx, storeID, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, storeID valueobjects.ID, category *entities.Category) error {
	args := m.Called(ctx, storeID, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, storeID, categoryID valueobjects.ID) error {
	args := m.Called(ctx, storeID, categoryID)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, storeID, categoryID valueobjects.ID) (*entities.Category, error) {
	args := m.Called(ctx, storeID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, storeID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Category], error) {
	args := m.Called(ctx, storeID, limit, cursor)
	return args.Get(0).(common.Page[*entities.Category]), args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context, storeID valueobjects.ID) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock of ports.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Exists(ctx context.Context, storeID, productID valueobjects.ID) (bool, error) {
	args := m.Called(ctx, storeID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, storeID valueobjects.ID, product *entities.Product) error {
	args := m.Called(ctx, storeID, product)
	return args.Error(0)
}

func (m *MockProductRepository) CreateAll(ctx context.Context, storeID valueobjects.ID, products []*entities.Product) error {
	args := m.Called(ctx, storeID, products)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, storeID valueobjects.ID, product *entities.Product) error {
	args := m.Called(ctx, storeID, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, storeID, productID valueobjects.ID) error {
	args := m.Called(ctx, storeID, productID)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, storeID, productID valueobjects.ID) (*entities.Product, error) {
	args := m.Called(ctx, storeID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, storeID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Product], error) {
	args := m.Called(ctx, storeID, limit, cursor)
	return args.Get(0).(common.Page[*entities.Product]), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, storeID valueobjects.ID) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) GetIfNotExists(ctx context.Context, storeID valueobjects.ID, productIDs []valueobjects.ID) ([]valueobjects.ID, error) {
	args := m.Called(ctx, storeID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]valueobjects.ID), args.Error(1)
}

func (m *MockProductRepository) IsInUse(ctx context.Context, storeID, productID valueobjects.ID) (bool, error) {
	args := m.Called(ctx, storeID, productID)
	return args.Bool(0), args.Error(1)
}

// MockOfferRepository is a mock of ports.OfferRepository
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Exists(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) (bool, error) {
	args := m.Called(ctx, storeID, categoryID, offerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfferRepository) Create(ctx context.Context, storeID, categoryID valueobjects.ID, offer *entities.Offer) error {
	args := m.Called(ctx, storeID, categoryID, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, storeID, categoryID valueobjects.ID, offer *entities.Offer) error {
	args := m.Called(ctx, storeID, categoryID, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) Delete(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) error {
	args := m.Called(ctx, storeID, categoryID, offerID)
	return args.Error(0)
}

func (m *MockOfferRepository) GetByID(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) (*entities.Offer, error) {
	args := m.Called(ctx, storeID, categoryID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Offer), args.Error(1)
}

func (m *MockOfferRepository) List(ctx context.Context, storeID, categoryID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Offer], error) {
	args := m.Called(ctx, storeID, categoryID, limit, cursor)
	return args.Get(0).(common.Page[*entities.Offer]), args.Error(1)
}

func (m *MockOfferRepository) Count(ctx context.Context, storeID, categoryID valueobjects.ID) (int64, error) {
	args := m.Called(ctx, storeID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfferRepository) Search(ctx context.Context, storeID valueobjects.ID, query string, limit, offset int) ([]*entities.Offer, int64, error) {
	args := m.Called(ctx, storeID, query, limit, offset)
	var offers []*entities.Offer
	if args.Get(0) != nil {
		offers = args.Get(0).([]*entities.Offer)
	}
	return offers, args.Get(1).(int64), args.Error(2)
}

// MockEventPublisher is a mock of ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBatch(ctx context.Context, evts []events.DomainEvent) error {
	args := m.Called(ctx, evts)
	return args.Error(0)
}

// MockMetrics is a mock of ports.Metrics
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordUseCase(ctx context.Context, name string, duration time.Duration, err error) {
	m.Called(ctx, name, duration, err)
}
