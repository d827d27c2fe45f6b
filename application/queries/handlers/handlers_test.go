package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/ports/mocks"
	"github.com/rodrigogurgel/catalog-sub001/application/queries"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/fixtures"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

func TestGetCategory_NotFound(t *testing.T) {
	ctx := context.Background()
	storeID, categoryID := valueobjects.NewID(), valueobjects.NewID()

	categories := new(mocks.MockCategoryRepository)
	categories.On("GetByID", ctx, storeID, categoryID).Return(nil, nil)

	handler := NewCategoryQueryHandler(nil, categories, nil, zap.NewNop())

	_, err := handler.GetCategory(ctx, queries.GetCategoryQuery{StoreID: storeID, CategoryID: categoryID})

	assert.ErrorIs(t, err, pkgerrors.ErrCategoryNotFound)
}

func TestListCategories_UsesDefaultLimit(t *testing.T) {
	// Arrange
	ctx := context.Background()
	storeID := valueobjects.NewID()
	page := common.Page[*entities.Category]{
		Items:      []*entities.Category{fixtures.NewCategoryBuilder().MustBuild()},
		NextCursor: "next",
	}

	stores := new(mocks.MockStoreRepository)
	categories := new(mocks.MockCategoryRepository)
	stores.On("Exists", ctx, storeID).Return(true, nil)
	categories.On("List", ctx, storeID, common.DefaultPageSize, "").Return(page, nil)

	handler := NewCategoryQueryHandler(stores, categories, nil, zap.NewNop())

	// Act
	result, err := handler.ListCategories(ctx, queries.ListCategoriesQuery{StoreID: storeID})

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.True(t, result.HasMore())
	categories.AssertExpectations(t)
}

func TestListCategories_RejectsOversizedLimit(t *testing.T) {
	handler := NewCategoryQueryHandler(nil, nil, nil, zap.NewNop())

	_, err := handler.ListCategories(context.Background(), queries.ListCategoriesQuery{
		StoreID: valueobjects.NewID(),
		Limit:   common.MaxPageSize + 1,
	})

	assert.ErrorIs(t, err, pkgerrors.ErrInvalidPaginationRequest)
}

func TestCountProducts_StoreNotFound(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()

	stores := new(mocks.MockStoreRepository)
	products := new(mocks.MockProductRepository)
	stores.On("Exists", ctx, storeID).Return(false, nil)

	handler := NewProductQueryHandler(stores, products, nil, zap.NewNop())

	_, err := handler.CountProducts(ctx, queries.CountProductsQuery{StoreID: storeID})

	assert.ErrorIs(t, err, pkgerrors.ErrStoreNotFound)
	products.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestGetOffer_Found(t *testing.T) {
	ctx := context.Background()
	storeID, categoryID := valueobjects.NewID(), valueobjects.NewID()
	offer := fixtures.NewOfferBuilder().MustBuild()

	offers := new(mocks.MockOfferRepository)
	metrics := new(mocks.MockMetrics)
	offers.On("GetByID", ctx, storeID, categoryID, offer.ID()).Return(offer, nil)
	metrics.On("RecordUseCase", ctx, "GetOffer", mock.AnythingOfType("time.Duration"), nil).Return()

	handler := NewOfferQueryHandler(nil, nil, offers, metrics, zap.NewNop())

	got, err := handler.GetOffer(ctx, queries.GetOfferQuery{StoreID: storeID, CategoryID: categoryID, OfferID: offer.ID()})

	require.NoError(t, err)
	assert.Equal(t, offer, got)
	metrics.AssertExpectations(t)
}

func TestListOffers_CategoryNotFound(t *testing.T) {
	ctx := context.Background()
	storeID, categoryID := valueobjects.NewID(), valueobjects.NewID()

	stores := new(mocks.MockStoreRepository)
	categories := new(mocks.MockCategoryRepository)
	offers := new(mocks.MockOfferRepository)
	stores.On("Exists", ctx, storeID).Return(true, nil)
	categories.On("Exists", ctx, storeID, categoryID).Return(false, nil)

	handler := NewOfferQueryHandler(stores, categories, offers, nil, zap.NewNop())

	_, err := handler.ListOffers(ctx, queries.ListOffersQuery{StoreID: storeID, CategoryID: categoryID})

	assert.ErrorIs(t, err, pkgerrors.ErrCategoryNotFound)
	offers.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchOffers(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()
	found := []*entities.Offer{fixtures.NewOfferBuilder().MustBuild()}

	stores := new(mocks.MockStoreRepository)
	offers := new(mocks.MockOfferRepository)
	stores.On("Exists", ctx, storeID).Return(true, nil)
	offers.On("Search", ctx, storeID, "burger", 10, 20).Return(found, int64(21), nil)

	handler := NewOfferQueryHandler(stores, nil, offers, nil, zap.NewNop())

	result, err := handler.SearchOffers(ctx, queries.SearchOffersQuery{StoreID: storeID, Query: "  burger ", Limit: 10, Offset: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(21), result.Total)
	assert.Equal(t, found, result.Offers)
}

func TestSearchOffers_NegativeOffset(t *testing.T) {
	handler := NewOfferQueryHandler(nil, nil, nil, nil, zap.NewNop())

	_, err := handler.SearchOffers(context.Background(), queries.SearchOffersQuery{StoreID: valueobjects.NewID(), Offset: -1})

	assert.ErrorIs(t, err, pkgerrors.ErrInvalidPaginationRequest)
}
